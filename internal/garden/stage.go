package garden

// Stage is one of the four discrete growth phases.
type Stage int

const (
	Seed Stage = iota
	Sprout
	Bud
	Bloom
)

// LastStage is the terminal stage; growth stops there.
const LastStage = Bloom

// Stages lists every stage in growth order.
var Stages = []Stage{Seed, Sprout, Bud, Bloom}

var stageNames = [...]string{
	Seed:   "Seed",
	Sprout: "Sprout",
	Bud:    "Bud",
	Bloom:  "Bloom",
}

var stageCaptions = [...]string{
	Seed:   "Please water me so I can become bloom :<",
	Sprout: "I'm sprouting! Keep watering, I'm getting stronger! :)",
	Bud:    "Almost blooming! A few more drops, pretty please? ^_^",
	Bloom:  "I'm a beautiful rose! Thank you for all the love! <3",
}

// HowToPlay is the help card text shown next to the garden.
const HowToPlay = `Grow a rose from seed to bloom! Click "Water" to nurture it through Seed, Sprout, Bud, and Bloom stages. Each click adds growth, and animations show progress. "Rush na gawa lang to!! HAHAHAHAHAH".`

// stemSpans is the stem growth of each stage in stem units.
var stemSpans = [...]float64{
	Seed:   1,
	Sprout: 1,
	Bud:    2,
	Bloom:  0,
}

func (s Stage) String() string {
	if !s.Valid() {
		return "Unknown"
	}
	return stageNames[s]
}

// Caption is the thought-bubble line the flower says in this stage.
func (s Stage) Caption() string {
	if !s.Valid() {
		return ""
	}
	return stageCaptions[s]
}

func (s Stage) Valid() bool { return s >= Seed && s <= LastStage }

// Terminal reports whether no further stage follows s.
func (s Stage) Terminal() bool { return s >= LastStage }

// Next returns the following stage, or s itself in the terminal stage.
func (s Stage) Next() Stage {
	if s.Terminal() {
		return LastStage
	}
	return s + 1
}
