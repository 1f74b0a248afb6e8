package sim

import (
	"bytes"
	"errors"
	"log"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("Ticking Component", func() {
	var (
		mockCtrl *gomock.Controller
		engine   *MockEngine
		ticker   *MockTicker
		tc       *TickingComponent
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		engine = NewMockEngine(mockCtrl)
		ticker = NewMockTicker(mockCtrl)
		tc = NewTickingComponent("TC", engine, ticker)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should tick in the next cycle", func() {
		engine.EXPECT().CurrentTime().Return(VTimeInCycle(10))
		engine.EXPECT().Schedule(gomock.Any()).
			Do(func(e Event) {
				Expect(e.Time()).To(Equal(VTimeInCycle(11)))
				Expect(e.Handler()).To(BeIdenticalTo(tc))
			})

		tc.TickLater()
	})

	It("should give every tick event its own ID", func() {
		evt1 := MakeTickEvent(tc, 10)
		evt2 := MakeTickEvent(tc, 10)

		Expect(evt1.ID).NotTo(BeEmpty())
		Expect(evt2.ID).NotTo(Equal(evt1.ID))
	})

	It("should tick again when the ticker makes progress", func() {
		engine.EXPECT().CurrentTime().Return(VTimeInCycle(10))
		engine.EXPECT().Schedule(gomock.Any()).
			Do(func(e Event) {
				Expect(e.Time()).To(Equal(VTimeInCycle(11)))
			})
		ticker.EXPECT().Tick().Return(true, nil)

		Expect(tc.Handle(MakeTickEvent(tc, 10))).To(Succeed())
	})

	It("should not tick if there is another tick scheduled in the future",
		func() {
			engine.EXPECT().CurrentTime().Return(VTimeInCycle(10)).Times(2)
			engine.EXPECT().Schedule(gomock.Any()).
				Do(func(e Event) {
					Expect(e.Time()).To(Equal(VTimeInCycle(11)))
				})

			ticker.EXPECT().Tick().Return(true, nil).Times(2)
			Expect(tc.Handle(MakeTickEvent(tc, 10))).To(Succeed())
			Expect(tc.Handle(MakeTickEvent(tc, 10))).To(Succeed())
		})

	It("should stop ticking if no progress is made", func() {
		ticker.EXPECT().Tick().Return(false, nil)

		Expect(tc.Handle(MakeTickEvent(tc, 10))).To(Succeed())
	})

	It("should return the ticker error without rescheduling", func() {
		failure := errors.New("jammed")
		ticker.EXPECT().Tick().Return(true, failure)

		err := tc.Handle(MakeTickEvent(tc, 10))

		Expect(err).To(MatchError(failure))
		Expect(err.Error()).To(Equal("TC: jammed"))
	})

	It("should run a ticker to completion on a serial engine", func() {
		engine := NewSerialEngine()
		counter := &countingTicker{limit: 5}
		tc := NewTickingComponent("Counter", engine, counter)

		tc.TickLater()

		Expect(engine.Run()).To(Succeed())
		Expect(counter.count).To(Equal(5))
		Expect(engine.CurrentTime()).To(Equal(VTimeInCycle(5)))
	})

	It("should stop the engine when a ticker fails", func() {
		engine := NewSerialEngine()
		var buf bytes.Buffer
		engine.AcceptHook(NewEventLogger(log.New(&buf, "", 0)))

		failure := errors.New("jammed")
		counter := &countingTicker{limit: 10, failAt: 3, err: failure}
		tc := NewTickingComponent("Counter", engine, counter)

		tc.TickLater()

		err := engine.Run()
		Expect(errors.Is(err, failure)).To(BeTrue())
		Expect(err.Error()).To(Equal("cycle 3: Counter: jammed"))
		Expect(counter.count).To(Equal(3))
		Expect(buf.String()).To(ContainSubstring(
			"3, sim.TickEvent failed: Counter: jammed"))
	})
})

type countingTicker struct {
	count  int
	limit  int
	failAt int
	err    error
}

func (t *countingTicker) Tick() (bool, error) {
	t.count++
	if t.failAt > 0 && t.count == t.failAt {
		return false, t.err
	}
	return t.count < t.limit, nil
}
