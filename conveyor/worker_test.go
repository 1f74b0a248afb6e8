package conveyor

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Worker", func() {
	var (
		worker *Worker
		slot   *Slot
	)

	BeforeEach(func() {
		worker = NewWorker(3)
		slot = NewSlot([]*Worker{worker}, NewComponent("A"))
	})

	It("should panic if the build duration is less than 1", func() {
		Expect(func() { NewWorker(0) }).To(Panic())
	})

	It("should take a component when empty-handed", func() {
		Expect(worker.CanTake(NewComponent("A"))).To(BeTrue())
		Expect(worker.CouldStartBuildingWith(NewComponent("A"))).To(BeFalse())

		Expect(worker.TakeComponent(slot)).To(Succeed())

		Expect(slot.Item()).To(Equal(Empty))
		Expect(worker.Items()).To(Equal([]Item{NewComponent("A")}))
		Expect(worker.IsBuilding()).To(BeFalse())
	})

	It("should not take a second component of the same type", func() {
		worker.items = []Item{NewComponent("A")}

		Expect(worker.CanTake(NewComponent("A"))).To(BeFalse())

		err := worker.TakeComponent(slot)

		Expect(err).To(MatchError(ErrNotEligibleToTake))
		Expect(slot.Item()).To(Equal(NewComponent("A")))
		Expect(worker.Items()).To(HaveLen(1))
	})

	It("should not take anything but a component", func() {
		Expect(worker.CanTake(NewProduct())).To(BeFalse())
		Expect(worker.CanTake(Empty)).To(BeFalse())

		slot.SetItem(NewProduct())
		Expect(worker.TakeComponent(slot)).
			To(MatchError(ErrNotATakeableComponent))

		slot.SetItem(Empty)
		Expect(worker.TakeComponent(slot)).
			To(MatchError(ErrNotATakeableComponent))
	})

	It("should start building when a pair is complete", func() {
		worker.items = []Item{NewComponent("B")}

		Expect(worker.CouldStartBuildingWith(NewComponent("A"))).To(BeTrue())
		Expect(worker.TakeComponent(slot)).To(Succeed())

		remaining, building := worker.BuildRemaining()
		Expect(building).To(BeTrue())
		Expect(remaining).To(Equal(3))
		Expect(worker.Items()).To(Equal(
			[]Item{NewComponent("B"), NewComponent("A")}))
	})

	It("should finish after exactly the build duration", func() {
		worker.items = []Item{NewComponent("B")}
		Expect(worker.TakeComponent(slot)).To(Succeed())

		for i := 0; i < 2; i++ {
			Expect(worker.ContinueBuilding()).To(Succeed())
			Expect(worker.IsBuilding()).To(BeTrue())
			Expect(worker.CanTake(NewComponent("C"))).To(BeFalse())
			Expect(worker.IsHoldingFinishedProduct()).To(BeFalse())
		}

		Expect(worker.ContinueBuilding()).To(Succeed())

		Expect(worker.IsBuilding()).To(BeFalse())
		Expect(worker.IsHoldingFinishedProduct()).To(BeTrue())
		Expect(worker.Items()).To(Equal([]Item{NewProduct()}))
		Expect(worker.CanTake(NewComponent("A"))).To(BeFalse())
	})

	It("should refuse to continue building when idle", func() {
		Expect(worker.ContinueBuilding()).To(MatchError(ErrNotBuilding))
	})

	It("should place a finished product onto an empty slot", func() {
		worker.items = []Item{NewProduct()}
		slot.SetItem(Empty)

		Expect(worker.PlaceFinishedProduct(slot)).To(Succeed())

		Expect(slot.Item()).To(Equal(NewProduct()))
		Expect(worker.Items()).To(BeEmpty())
		_, building := worker.BuildRemaining()
		Expect(building).To(BeFalse())
	})

	It("should not place onto an occupied slot", func() {
		worker.items = []Item{NewProduct()}

		Expect(worker.PlaceFinishedProduct(slot)).
			To(MatchError(ErrInvalidPlacement))
		Expect(worker.Items()).To(Equal([]Item{NewProduct()}))
	})

	It("should not place without a finished product", func() {
		worker.items = []Item{NewComponent("B")}
		slot.SetItem(Empty)

		Expect(worker.PlaceFinishedProduct(slot)).
			To(MatchError(ErrNotFinished))
		Expect(slot.IsEmpty()).To(BeTrue())
	})

	It("should report whether it holds a component type", func() {
		worker.items = []Item{NewComponent("B")}

		Expect(worker.IsHoldingComponentType("B")).To(BeTrue())
		Expect(worker.IsHoldingComponentType("A")).To(BeFalse())
	})
})
