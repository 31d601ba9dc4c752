package trainer

// timerTickMsg is sent every second while the practice timer runs. Gen is
// the countdown generation that scheduled it.
type timerTickMsg struct {
	Gen uint64
}

// autoNextMsg fires once after a correct answer. Seq is the item sequence
// it was scheduled for; any later transition makes it stale.
type autoNextMsg struct {
	Seq uint64
}
