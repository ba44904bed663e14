package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/fretdex/cache"
	"github.com/jsphweid/fretdex/catalog"
	"github.com/jsphweid/fretdex/logging"
	"github.com/jsphweid/fretdex/model"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	sourceCatalog = "catalog"
	sourceCache   = "cache"
	sourceSearch  = "search"
)

var (
	serveCatalog *catalog.Catalog
	serveCache   cache.Store

	bodyValidate = validator.New()
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves shape searches over HTTP",
	Long: `Serves POST /shapes, GET /tunings and GET /chords on the configured listen
address. Chords in the catalog from "index" are answered from it; everything
else is searched live and cached.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := LoadServeFiles(); err != nil {
			return err
		}
		return serve(cmd.Context(), cfg.ListenAddr)
	},
}

// LoadServeFiles loads the catalog, when one was built, and sets up the
// result cache.
func LoadServeFiles() error {
	path := catalog.Path(cfg.IndexDir)
	cat, err := catalog.Load(path)
	switch {
	case err == nil:
		serveCatalog = cat
		logger.Info("Loaded catalog",
			zap.String("path", path),
			zap.String("tuning", cat.TuningName),
			zap.Int("entries", len(cat.Entries)))
	case errors.Is(err, fs.ErrNotExist):
		serveCatalog = nil
		logger.Info("No catalog, every request searches live", zap.String("path", path))
	default:
		return err
	}

	tiers := cache.NewTiered(logger, cache.NewMemory(cfg.Cache.MemoryEntries))
	if cfg.Cache.DynamoEndpoint != "" {
		d, err := cache.NewDynamo(cache.DynamoConfig{
			Endpoint: cfg.Cache.DynamoEndpoint,
			Region:   cfg.Cache.Region,
			Table:    cfg.Cache.Table,
			TTL:      cfg.Cache.TTL,
		})
		if err != nil {
			return err
		}
		tiers.Stores = append(tiers.Stores, d)
		logger.Info("Caching shapes in DynamoDB",
			zap.String("endpoint", cfg.Cache.DynamoEndpoint),
			zap.String("table", cfg.Cache.Table))
	}
	serveCache = tiers
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("Could not write response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

// lookupShapes tries the catalog, then the cache, then searches.
func lookupShapes(ctx context.Context, spec model.ChordSpec, c model.Constraints) ([]model.Shape, string, model.SearchStats, error) {
	if serveCatalog != nil {
		if shapes, ok := serveCatalog.Lookup(spec, c); ok {
			return shapes, sourceCatalog, model.SearchStats{Survivors: len(shapes)}, nil
		}
	}

	key := cache.Key(spec, c)
	if serveCache != nil {
		shapes, err := serveCache.Get(ctx, key)
		switch {
		case err == nil:
			return shapes, sourceCache, model.SearchStats{Survivors: len(shapes)}, nil
		case !errors.Is(err, cache.ErrMiss):
			logger.Warn("Cache read failed", zap.String("key", key), zap.Error(err))
		}
	}

	res, err := runSearch(ctx, spec, c, false)
	if err != nil {
		return nil, "", model.SearchStats{}, err
	}
	if serveCache != nil {
		if err := serveCache.Put(ctx, key, res.Shapes); err != nil {
			logger.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return res.Shapes, sourceSearch, res.Stats, nil
}

func HandleShapes(w http.ResponseWriter, r *http.Request) {
	id := uuid.New().String()
	log := logger.With(zap.String("request_id", id))

	var body model.ShapesRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if err := bodyValidate.Struct(body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	chordType := body.Type
	if chordType == "" {
		chordType = "major"
	}
	spec, err := resolveChord(body.Root, chordType, body.Notes)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	// a single tuning entry may name a preset
	tuningName, tuningNames := body.TuningName, body.Tuning
	if len(tuningNames) == 1 {
		tuningName, tuningNames = tuningNames[0], nil
	}
	c, _, err := resolveConstraints(tuningName, tuningNames, body.Profile, body.Constraints)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	shapes, source, stats, err := lookupShapes(r.Context(), spec, c)
	if err != nil {
		log.Error("Search failed", logging.Chord(spec), zap.Error(err))
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	log.Info("Served shapes",
		logging.Chord(spec),
		zap.String("source", source),
		zap.Int("shapes", len(shapes)),
		logging.Stats(stats))
	writeJSON(w, http.StatusOK, model.ShapesResponse{
		Id:     id,
		Chord:  spec,
		Source: source,
		Shapes: labeled(shapes),
		Stats:  stats,
	})
}

func HandleTunings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, tuningSummaries())
}

func HandleChords(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, chordTypeSummaries())
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/shapes", HandleShapes).Methods(http.MethodPost)
	router.HandleFunc("/tunings", HandleTunings).Methods(http.MethodGet)
	router.HandleFunc("/chords", HandleChords).Methods(http.MethodGet)

	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(router)
}

func serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Serving", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
