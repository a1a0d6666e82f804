package redis

type StreamConfig struct {
	Addr     string
	Password string
	Stream   string
	Group    string
	Consumer string
	// ResultsStream, when set, receives the evaluation response of every
	// processed document.
	ResultsStream string
}
