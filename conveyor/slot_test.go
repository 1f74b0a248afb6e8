package conveyor

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Slot", func() {
	var (
		slot    *Slot
		worker1 *Worker
		worker2 *Worker
	)

	BeforeEach(func() {
		worker1 = NewWorker(3)
		worker2 = NewWorker(3)
		slot = NewSlot([]*Worker{worker1, worker2}, NewComponent("A"))
	})

	It("should let the first worker take a component if nobody holds anything",
		func() {
			Expect(slot.DoWork()).To(Succeed())

			Expect(slot.IsEmpty()).To(BeTrue())
			Expect(worker1.Items()).To(Equal([]Item{NewComponent("A")}))
			Expect(worker2.Items()).To(BeEmpty())
		})

	It("should prefer a worker who can start building", func() {
		worker2.items = []Item{NewComponent("B")}

		Expect(slot.DoWork()).To(Succeed())

		Expect(slot.IsEmpty()).To(BeTrue())
		Expect(worker1.Items()).To(BeEmpty())
		Expect(worker2.Items()).To(HaveLen(2))
		Expect(worker2.IsBuilding()).To(BeTrue())
	})

	It("should not give a component to a worker holding the same type", func() {
		worker1.items = []Item{NewComponent("A")}

		Expect(slot.DoWork()).To(Succeed())

		Expect(worker1.Items()).To(Equal([]Item{NewComponent("A")}))
		Expect(worker2.Items()).To(Equal([]Item{NewComponent("A")}))
	})

	It("should leave components while workers are building", func() {
		worker1.items = []Item{NewComponent("B")}
		worker2.items = []Item{NewComponent("A")}

		Expect(slot.DoWork()).To(Succeed())

		slot.SetItem(NewComponent("B"))
		Expect(slot.DoWork()).To(Succeed())

		Expect(worker1.IsBuilding()).To(BeTrue())
		Expect(worker2.IsBuilding()).To(BeTrue())

		slot.SetItem(NewComponent("B"))
		Expect(slot.DoWork()).To(Succeed())
		Expect(slot.Item()).To(Equal(NewComponent("B")))

		slot.SetItem(NewComponent("A"))
		Expect(slot.DoWork()).To(Succeed())
		Expect(slot.Item()).To(Equal(NewComponent("A")))

		Expect(worker1.IsBuilding()).To(BeFalse())
		Expect(worker1.Items()).To(Equal([]Item{NewProduct()}))
		Expect(worker2.IsBuilding()).To(BeTrue())
	})

	It("should let a finished worker place a product on an empty slot", func() {
		worker1.items = []Item{NewProduct()}
		slot.SetItem(Empty)

		Expect(slot.DoWork()).To(Succeed())

		Expect(worker1.Items()).To(BeEmpty())
		Expect(slot.Item()).To(Equal(NewProduct()))
	})

	It("should let only one worker place a product per tick", func() {
		worker1.items = []Item{NewProduct()}
		worker2.items = []Item{NewProduct()}
		slot.SetItem(Empty)

		Expect(slot.DoWork()).To(Succeed())

		Expect(worker1.Items()).To(BeEmpty())
		Expect(worker2.Items()).To(Equal([]Item{NewProduct()}))
		Expect(slot.Item()).To(Equal(NewProduct()))
	})

	It("should keep products in hand if the slot is not empty", func() {
		worker1.items = []Item{NewProduct()}
		worker2.items = []Item{NewProduct()}

		Expect(slot.DoWork()).To(Succeed())

		Expect(worker1.Items()).To(Equal([]Item{NewProduct()}))
		Expect(worker2.Items()).To(Equal([]Item{NewProduct()}))
		Expect(slot.Item()).To(Equal(NewComponent("A")))
	})

	It("should keep a product in hand if another worker took the component",
		func() {
			worker1.items = []Item{NewProduct()}

			Expect(slot.DoWork()).To(Succeed())

			Expect(slot.IsEmpty()).To(BeTrue())
			Expect(worker1.Items()).To(Equal([]Item{NewProduct()}))
			Expect(worker2.Items()).To(Equal([]Item{NewComponent("A")}))
		})

	It("should not let a worker place a product in the tick it finishes",
		func() {
			worker1.items = []Item{NewComponent("B"), NewComponent("A")}
			worker1.buildRemaining = 1
			slot.SetItem(Empty)

			Expect(slot.DoWork()).To(Succeed())

			Expect(worker1.IsHoldingFinishedProduct()).To(BeTrue())
			Expect(slot.IsEmpty()).To(BeTrue())

			Expect(slot.DoWork()).To(Succeed())

			Expect(worker1.Items()).To(BeEmpty())
			Expect(slot.Item()).To(Equal(NewProduct()))
		})

	It("should leave a stray product alone", func() {
		slot.SetItem(NewProduct())
		worker1.items = []Item{NewComponent("B")}

		Expect(slot.DoWork()).To(Succeed())

		Expect(slot.Item()).To(Equal(NewProduct()))
		Expect(worker1.Items()).To(Equal([]Item{NewComponent("B")}))
		Expect(worker2.Items()).To(BeEmpty())
	})

	It("should change exactly one worker's holdings per tick", func() {
		workers := []*Worker{NewWorker(2), NewWorker(2), NewWorker(2)}
		slot = NewSlot(workers, NewComponent("A"))

		Expect(slot.DoWork()).To(Succeed())

		changed := 0
		for _, w := range workers {
			if len(w.Items()) > 0 {
				changed++
			}
		}
		Expect(changed).To(Equal(1))
	})

	It("should do nothing without workers", func() {
		slot = NewSlot(nil, NewComponent("A"))

		Expect(slot.DoWork()).To(Succeed())
		Expect(slot.Item()).To(Equal(NewComponent("A")))
	})

	It("should not expose its worker list", func() {
		workers := slot.Workers()
		workers[0] = NewWorker(1)

		Expect(slot.Workers()).To(Equal([]*Worker{worker1, worker2}))
	})
})
