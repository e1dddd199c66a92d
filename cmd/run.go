package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/quizduel/internal/config"
	"github.com/abhisek/quizduel/internal/performance"
	"github.com/abhisek/quizduel/internal/store"
)

// env is the state shared by every command: configuration, logger, the
// persistent store and the in-memory logs loaded from it.
type env struct {
	cfg   *config.Config
	log   *zap.Logger
	db    *store.Store
	perf  *performance.Store
	close func()
}

// openEnv loads configuration, opens the store and restores all logs.
func openEnv(cmd *cobra.Command) (*env, error) {
	ctx := cmd.Context()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger := newLogger(cfg)

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath, logger)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	perf := performance.NewStore()
	if err := st.LoadInto(ctx, perf); err != nil {
		st.Close()
		return nil, fmt.Errorf("load logs: %w", err)
	}

	return &env{
		cfg:  cfg,
		log:  logger,
		db:   st,
		perf: perf,
		close: func() {
			st.Close()
			_ = logger.Sync()
		},
	}, nil
}

// learnerLog returns the log of the selected learner. A learner who has
// never answered gets an empty log so reports render their empty state.
func (e *env) learnerLog() (*performance.Log, error) {
	if e.cfg.LearnerID == "" {
		return nil, fmt.Errorf("no learner selected: pass --learner or set QUIZDUEL_LEARNER")
	}
	l, ok := e.perf.Get(e.cfg.LearnerID)
	if !ok {
		e.log.Debug("learner has no log yet", zap.String("learner", e.cfg.LearnerID))
		return &performance.Log{LearnerID: e.cfg.LearnerID}, nil
	}
	return l, nil
}
