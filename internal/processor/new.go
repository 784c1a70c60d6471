package processor

import (
	"time"

	"github.com/nguyentantai21042004/bisub/internal/config"
	"github.com/nguyentantai21042004/bisub/internal/logger"
	"github.com/nguyentantai21042004/bisub/internal/script"
	"github.com/nguyentantai21042004/bisub/internal/translator"
)

type implProcessor struct {
	cfg        *config.Config
	translator translator.Translator
	classifier script.Classifier
	logger     logger.Logger
	delay      time.Duration
}

// New creates a new Processor instance.
// cfg.Languages must name languages known to the script package.
func New(cfg *config.Config, tr translator.Translator, log logger.Logger) Processor {
	primary, _ := script.ForLanguage(cfg.Languages.Primary)
	secondary, _ := script.ForLanguage(cfg.Languages.Secondary)

	return &implProcessor{
		cfg:        cfg,
		translator: tr,
		classifier: script.NewClassifier(primary, secondary),
		logger:     log,
		delay:      cfg.Pipeline.Delay,
	}
}
