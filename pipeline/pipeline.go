// Package pipeline sequences the two coding stages: source coding with a
// per-run Huffman table, channel coding with Hamming(7,4), error injection
// in between and the two recovery steps.
package pipeline

import (
	"fmt"

	"github.com/harlequix/bitpipe/hamming"
	"github.com/harlequix/bitpipe/huffman"
	"github.com/harlequix/bitpipe/internal/bits"
	log "github.com/harlequix/bitpipe/log"
	"github.com/harlequix/bitpipe/model"
	"github.com/harlequix/bitpipe/noise"
	"github.com/spf13/viper"
)

func init() {
	viper.SetDefault("ErrorInterval", 50)
	viper.SetDefault("Seed", 2024)
}

type Config struct {
	ErrorInterval int
	Seed          int64
}

// Result collects every artifact of one run. It is built once, owned by
// the caller and never shared between runs.
type Result struct {
	Source        string
	Probabilities map[rune]float64
	Codes         map[rune]string
	Encoded       *bits.Stream
	Coded         *bits.Stream
	PadBits       int
	Corrupted     *bits.Stream
	Recovered     *bits.Stream
	Decoded       string
	HuffmanOK     bool
	HammingOK     bool
}

type Pipeline struct {
	config Config
	logger *log.Logger
}

// New builds a pipeline from the viper-backed configuration.
func New() *Pipeline {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		panic(fmt.Errorf("pipeline: cannot read config: %w", err))
	}
	return NewWithConfig(config)
}

func NewWithConfig(config Config) *Pipeline {
	return &Pipeline{
		config: config,
		logger: log.NewLogger("pipeline"),
	}
}

// Trace mirrors the run logs into trace files next to path.
func (self *Pipeline) Trace(path string) {
	log.AddTracer(self.logger, path)
}

// Run pushes source through every stage and reports all intermediate
// streams plus the two round-trip flags. Stage errors abort the run;
// every stage is deterministic, so nothing is retried.
func (self *Pipeline) Run(source string) (*Result, error) {
	probs := model.Probabilities(source)
	tree := huffman.BuildTree(probs)
	codes := huffman.DeriveCodes(tree)
	self.logger.WithField("symbols", len(probs)).Debug("derived code table")

	encoded, err := huffman.Encode(source, codes)
	if err != nil {
		return nil, fmt.Errorf("pipeline: source coding failed: %w", err)
	}

	coded, pad := hamming.Encode(encoded)
	corrupted := noise.Inject(coded, self.config.ErrorInterval, self.config.Seed)
	self.logger.WithField("bits", coded.Len()).WithField("pad", pad).Debug("channel coding done")

	recovered, err := hamming.Decode(corrupted, pad)
	if err != nil {
		return nil, fmt.Errorf("pipeline: channel decoding failed: %w", err)
	}
	decoded := huffman.Decode(recovered, tree)

	result := &Result{
		Source:        source,
		Probabilities: probs,
		Codes:         codes,
		Encoded:       encoded,
		Coded:         coded,
		PadBits:       pad,
		Corrupted:     corrupted,
		Recovered:     recovered,
		Decoded:       decoded,
		HuffmanOK:     decoded == source,
		HammingOK:     recovered.Equal(encoded),
	}
	self.logger.WithField("huffman_ok", result.HuffmanOK).WithField("hamming_ok", result.HammingOK).Info("run complete")
	return result, nil
}

// Run is the one-shot form used by callers that carry their own settings.
func Run(source string, interval int, seed int64) (*Result, error) {
	return NewWithConfig(Config{ErrorInterval: interval, Seed: seed}).Run(source)
}
