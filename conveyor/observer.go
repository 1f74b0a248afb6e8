package conveyor

// An Observer is notified when items enter or leave the belt. Both calls may
// carry Empty, which means an empty position entered or left.
type Observer interface {
	// NotifyComponentEnteredBelt is called after the entry slot is filled.
	NotifyComponentEnteredBelt(item Item)

	// NotifyItemExitedBelt is called with the item that falls off the exit
	// end, before the belt shifts.
	NotifyItemExitedBelt(item Item)
}

// ObserverList forwards every notification to each of its observers in order.
type ObserverList []Observer

// NotifyComponentEnteredBelt forwards the entry notification.
func (l ObserverList) NotifyComponentEnteredBelt(item Item) {
	for _, o := range l {
		o.NotifyComponentEnteredBelt(item)
	}
}

// NotifyItemExitedBelt forwards the exit notification.
func (l ObserverList) NotifyItemExitedBelt(item Item) {
	for _, o := range l {
		o.NotifyItemExitedBelt(item)
	}
}
