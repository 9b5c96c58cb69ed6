package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/biblegym/internal/app"
	"github.com/abhisek/biblegym/internal/bibleapi"
	"github.com/abhisek/biblegym/internal/config"
	"github.com/abhisek/biblegym/internal/corpus"
	"github.com/abhisek/biblegym/internal/drillgen"
	"github.com/abhisek/biblegym/internal/llm"
	"github.com/abhisek/biblegym/internal/store"
	"github.com/abhisek/biblegym/internal/ui/render"
	"github.com/abhisek/biblegym/internal/workout"
)

// runtime bundles the dependencies most commands need.
type runtime struct {
	cfg     config.Config
	store   *store.Store
	engine  *app.Engine
	corpus  *corpus.Corpus
	lookup  *bibleapi.Client
	gen     *drillgen.Generator
	render  *render.Renderer
	aiReady bool
	now     func() time.Time
}

// openRuntime loads config, opens the store, restores the engine and
// builds the drill generator. A missing or broken LLM setup only disables
// AI features.
func openRuntime(cmd *cobra.Command) (*runtime, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := config.Load(cmd)
	config.SetupLogging(cfg)

	dbPath, err := resolveDBPath(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(ctx, dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	c, err := loadCorpus(cmd)
	if err != nil {
		st.Close()
		return nil, err
	}

	eventRepo := st.EventRepo()
	engine, err := app.NewEngine(ctx, eventRepo, st.SnapshotRepo())
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("restore state: %w", err)
	}

	rt := &runtime{
		cfg:    cfg,
		store:  st,
		engine: engine,
		corpus: c,
		lookup: bibleapi.New(cfg.BibleAPIURL),
		render: render.New(cmd.OutOrStdout()),
		now:    time.Now,
	}

	var provider llm.Provider
	if cfg.LLM.Enabled() {
		provider, err = llm.NewProvider(ctx, cfg.LLM, eventRepo)
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "AI features will be unavailable.")
			provider = nil
		}
	}
	rt.aiReady = provider != nil
	rt.gen = drillgen.New(provider, rt.lookup, c, drillgen.DefaultConfig())
	return rt, nil
}

func (rt *runtime) Close() {
	rt.store.Close()
}

func (rt *runtime) today() string {
	return rt.now().Format(time.DateOnly)
}

func loadCorpus(cmd *cobra.Command) (*corpus.Corpus, error) {
	path, _ := cmd.Flags().GetString("corpus")
	if path == "" {
		return corpus.Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()
	c, err := corpus.Load(f)
	if err != nil {
		return nil, fmt.Errorf("load corpus %s: %w", path, err)
	}
	return c, nil
}

// requireUser returns the signed-in user's id.
func (rt *runtime) requireUser() (string, error) {
	st := rt.engine.State()
	if st.User == nil {
		return "", fmt.Errorf("not signed in; run `biblegym login --name NAME` first")
	}
	return st.User.ID, nil
}

// ensureWorkout returns today's current workout, generating and starting
// the daily one when the stored workout is from another day.
func (rt *runtime) ensureWorkout(ctx context.Context) (*workout.Workout, error) {
	st := rt.engine.State()
	if st.Workout != nil && st.Workout.Date == rt.today() {
		return st.Workout, nil
	}

	userID := ""
	if st.User != nil {
		userID = st.User.ID
	}
	w, err := workout.GenerateDaily(rt.corpus, userID, rt.now())
	if err != nil {
		return nil, fmt.Errorf("generate workout: %w", err)
	}
	if _, _, err := rt.engine.Dispatch(ctx, app.StartWorkout{Workout: w}); err != nil {
		return nil, err
	}
	return w, nil
}
