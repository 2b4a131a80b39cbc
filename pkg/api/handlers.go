package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/tallyworks/receiptor/pkg/points"
	"github.com/tallyworks/receiptor/pkg/receipt"
	"github.com/tallyworks/receiptor/pkg/store"
)

// ReceiptService is the gateway over the validator, calculator, and
// score store. The validator and calculator are stateless; the store is
// the only shared mutable state and synchronizes internally.
type ReceiptService struct {
	validator *receipt.Validator
	scores    *store.Store
	logger    *slog.Logger
}

// NewReceiptService wires the gateway.
func NewReceiptService(v *receipt.Validator, scores *store.Store, logger *slog.Logger) *ReceiptService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReceiptService{validator: v, scores: scores, logger: logger}
}

// Routes returns the service mux.
func (s *ReceiptService) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.HandleLiveness)
	mux.HandleFunc("/receipts/process", s.HandleProcess)
	mux.HandleFunc("/receipts/{id}/points", s.HandlePoints)
	return mux
}

// HandleLiveness handles GET / with a plain liveness body.
func (s *ReceiptService) HandleLiveness(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		WriteError(w, http.StatusNotFound, "Not found.")
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("Receipt scoring service live"))
}

// processResponse is the success envelope for /receipts/process.
type processResponse struct {
	ID string `json:"id"`
}

// HandleProcess handles POST /receipts/process: validate, score, store,
// and return the fresh identifier. Any validation failure maps to the
// uniform 400 rejection.
func (s *ReceiptService) HandleProcess(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteMethodNotAllowed(w)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB limit
	var doc any
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		WriteInvalidReceipt(w)
		return
	}

	rec, err := s.validator.Validate(doc)
	if err != nil {
		s.logger.DebugContext(r.Context(), "receipt rejected")
		WriteInvalidReceipt(w)
		return
	}

	score := points.Calculate(rec)
	id := s.scores.Insert(score)
	s.logger.InfoContext(r.Context(), "receipt scored",
		"id", id,
		"points", score,
		"items", len(rec.Items),
	)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(processResponse{ID: id})
}

// pointsResponse is the success envelope for /receipts/{id}/points.
type pointsResponse struct {
	Points int `json:"points"`
}

// HandlePoints handles GET /receipts/{id}/points.
func (s *ReceiptService) HandlePoints(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteMethodNotAllowed(w)
		return
	}

	id := r.PathValue("id")
	score, ok := s.scores.Lookup(id)
	if !ok {
		WriteReceiptNotFound(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(pointsResponse{Points: score})
}
