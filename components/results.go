package components

import "github.com/yohamta/donburi"

// ResultsOption represents the available results screen selections
type ResultsOption int

const (
	ResultsRetry ResultsOption = iota
	ResultsMap
	ResultsMenu
)

// ResultsData stores the current state of the results screen menu
type ResultsData struct {
	SelectedOption ResultsOption
	Won            bool
	FinalScore     int
	HeartsLeft     int
	Variant        string
}

// Results is the component type for results screen state
var Results = donburi.NewComponentType[ResultsData]()
