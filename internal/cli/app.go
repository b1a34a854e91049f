package cli

import (
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/spellingbee/internal/config"
	"github.com/robalobadob/spellingbee/internal/game"
	"github.com/robalobadob/spellingbee/internal/lexicon"
	"github.com/robalobadob/spellingbee/internal/metrics"
	"github.com/robalobadob/spellingbee/internal/store"
	"github.com/robalobadob/spellingbee/internal/words"
)

// app is the wired dialogue core shared by serve and play.
type app struct {
	dispatcher *game.Dispatcher
	list       *words.List
	close      func() error
}

// buildApp wires providers, cache, and dispatcher from cfg.
// m may be nil, in which case providers are not instrumented.
func buildApp(cfg config.Config, m *metrics.Metrics) (*app, error) {
	list, err := words.Load(cfg.WordsFile)
	if err != nil {
		return nil, err
	}
	total, _ := list.Stats()
	log.Info().Int("words", total).Str("file", cfg.WordsFile).Msg("word list loaded")
	table := game.DefaultTable()
	if gaps := list.Uncovered(table.Lengths()); len(gaps) > 0 {
		log.Warn().Ints("lengths", gaps).Str("file", cfg.WordsFile).
			Msg("word list has no words for some lengths; draws of those lengths will fail")
	}

	var wp game.WordProvider = list
	if cfg.WordAPIURL != "" {
		wp = words.Fallback{
			words.NewRemote(cfg.WordAPIURL, cfg.WordAPILengthParam, cfg.ProviderTimeout),
			list,
		}
		log.Info().Str("url", cfg.WordAPIURL).Msg("remote word service enabled")
	}

	var cache store.Cache
	closeFn := func() error { return nil }
	if cfg.DBPath != "" {
		db, err := store.OpenSQLite(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		cache, closeFn = db, db.Close
		log.Info().Str("path", cfg.DBPath).Msg("lexicon cache on sqlite")
	} else {
		cache = store.NewMemoryCache()
	}

	if cfg.WordnikAPIKey == "" {
		log.Warn().Msg("WORDNIK_API_KEY not set; definitions and examples will be unavailable")
	}
	var lp game.LexiconProvider = lexicon.NewCached(
		lexicon.NewWordnik(cfg.WordnikAPIURL, cfg.WordnikAPIKey, cfg.ProviderTimeout),
		cache,
	)

	if m != nil {
		wp = m.Words(wp)
		lp = m.Lexicon(lp)
	}

	return &app{
		dispatcher: game.NewDispatcher(table, wp, lp),
		list:       list,
		close:      closeFn,
	}, nil
}
