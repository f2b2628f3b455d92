package screen

// StatsMsg refreshes the header's score and streak after a screen has
// persisted progress.
type StatsMsg struct {
	Score  int
	Streak int
}
