package sim

import (
	"bytes"
	"errors"
	"log"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("EventLogger", func() {
	var (
		buf    *bytes.Buffer
		logger *EventLogger
		comp   *TickingComponent
	)

	BeforeEach(func() {
		buf = new(bytes.Buffer)
		logger = NewEventLogger(log.New(buf, "", 0))
		comp = NewTickingComponent("Line", NewSerialEngine(), &countingTicker{})
	})

	It("should log events before they are handled", func() {
		logger.Func(HookCtx{
			Pos:  HookPosBeforeEvent,
			Item: MakeTickEvent(comp, 12),
		})

		Expect(buf.String()).To(Equal("12, sim.TickEvent -> Line\n"))
	})

	It("should log failed events", func() {
		logger.Func(HookCtx{
			Pos:    HookPosAfterEvent,
			Item:   MakeTickEvent(comp, 3),
			Detail: errors.New("boom"),
		})

		Expect(buf.String()).To(Equal("3, sim.TickEvent failed: boom\n"))
	})

	It("should stay quiet after successful events", func() {
		logger.Func(HookCtx{
			Pos:  HookPosAfterEvent,
			Item: MakeTickEvent(comp, 3),
		})

		Expect(buf.String()).To(BeEmpty())
	})

	It("should ignore items that are not events", func() {
		logger.Func(HookCtx{Pos: HookPosBeforeEvent, Item: "not an event"})

		Expect(buf.String()).To(BeEmpty())
	})
})
