package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ftauth/authcatalog/internal/catalog"
	"github.com/ftauth/authcatalog/pkg/model"
	"github.com/ftauth/authcatalog/pkg/util/cors"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// SectionSource builds the sections served by the API. *catalog.Catalog
// satisfies it.
type SectionSource interface {
	AllSections() []model.Section
	Sections(screen string) ([]model.Section, error)
}

// SetupRoutes configures the catalog API endpoints, readable from origins.
func SetupRoutes(r *mux.Router, c SectionSource, origins []string, log *zap.Logger) {
	s := r.PathPrefix("/api").Subrouter()
	s.Use(mux.CORSMethodMiddleware(s))
	s.Use(cors.New(origins))

	h := catalogHandler{catalog: c, log: log}
	s.HandleFunc("/providers", h.HandleProviders).Methods(http.MethodOptions, http.MethodGet)
	s.HandleFunc("/providers/{id}", h.HandleProvider).Methods(http.MethodOptions, http.MethodGet)
	s.HandleFunc("/sections", h.HandleSections).Methods(http.MethodOptions, http.MethodGet)
	s.HandleFunc("/sections/{screen}", h.HandleScreen).Methods(http.MethodOptions, http.MethodGet)
}

type catalogHandler struct {
	catalog SectionSource
	log     *zap.Logger
}

// HandleProviders lists every supported provider.
func (h catalogHandler) HandleProviders(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, model.Providers())
}

// HandleProvider returns the provider matching the {id} path variable.
func (h catalogHandler) HandleProvider(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	provider, err := model.ParseProviderID(id)
	if err != nil {
		http.Error(w, "Provider not found.", http.StatusNotFound)
		return
	}
	h.writeJSON(w, provider)
}

// HandleSections returns the provider picker sections.
func (h catalogHandler) HandleSections(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.catalog.AllSections())
}

// HandleScreen returns the sections of the {screen} path variable.
func (h catalogHandler) HandleScreen(w http.ResponseWriter, r *http.Request) {
	screen := mux.Vars(r)["screen"]
	sections, err := h.catalog.Sections(screen)
	if errors.Is(err, catalog.ErrUnknownScreen) {
		http.Error(w, "Screen not found.", http.StatusNotFound)
		return
	} else if err != nil {
		h.log.Error("error building sections", zap.String("screen", screen), zap.Error(err))
		http.Error(w, "Error building sections.", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, sections)
}

func (h catalogHandler) writeJSON(w http.ResponseWriter, v interface{}) {
	var b bytes.Buffer
	if err := json.NewEncoder(&b).Encode(v); err != nil {
		h.log.Error("error encoding response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(b.Bytes())
}
