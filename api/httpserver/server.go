package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"clob/domain/orderbook"
	"clob/service"
)

// Server adapts OrderService to HTTP/JSON. It is a thin translation
// layer: wire payloads in, engine calls, wire payloads out.
type Server struct {
	svc        *service.OrderService
	router     *mux.Router
	log        *zap.SugaredLogger
	corsOrigin string
}

func New(svc *service.OrderService, corsOrigin string, logger *zap.SugaredLogger) *Server {
	s := &Server{
		svc:        svc,
		router:     mux.NewRouter(),
		log:        logger,
		corsOrigin: corsOrigin,
	}

	s.router.HandleFunc("/", s.handleHome).Methods(http.MethodGet)
	s.router.HandleFunc("/clob-stats", s.handleStats).Methods(http.MethodGet)
	s.router.HandleFunc("/orders", s.handleCreateOrder).Methods(http.MethodPost)
	s.router.HandleFunc("/order/{id}", s.handleOrderStatus).Methods(http.MethodGet)
	s.router.HandleFunc("/cancel", s.handleCancel).Methods(http.MethodPost)
	s.router.HandleFunc("/trades", s.handleTrades).Methods(http.MethodGet)
	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	return s
}

// ServeHTTP applies CORS before routing so preflight requests are
// answered even for routes registered with a single method.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if s.corsOrigin != "" {
		w.Header().Set("Access-Control-Allow-Origin", s.corsOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")
	}
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	s.log.Debugw("http request", "method", r.Method, "path", r.URL.Path)
	s.router.ServeHTTP(w, r)
}

// -------------------- Payloads --------------------

type createOrderRequest struct {
	BuyOrder bool  `json:"buy_order"`
	Price    int64 `json:"price"`
	Quantity int64 `json:"quantity"`
}

type matchDetail struct {
	Price     int64     `json:"price"`
	Quantity  int64     `json:"quantity"`
	Timestamp time.Time `json:"timestamp"`
}

type createOrderResponse struct {
	Status            string        `json:"status"`
	OrderID           string        `json:"order_id"`
	FilledQuantity    int64         `json:"filled_quantity"`
	RemainingQuantity int64         `json:"remaining_quantity"`
	Matches           []matchDetail `json:"matches"`
}

type cancelOrderRequest struct {
	OrderID string `json:"order_id"`
}

type cancelOrderResponse struct {
	Status           string `json:"status"`
	OrderID          string `json:"order_id"`
	ReleasedQuantity int64  `json:"released_quantity"`
}

type orderStatusResponse struct {
	OrderID         string `json:"order_id"`
	Status          string `json:"status"` // "open" or "not_found"
	CurrentQuantity int64  `json:"current_quantity"`
	IsBuy           bool   `json:"is_buy"`
	Price           int64  `json:"price"`
}

// -------------------- Handlers --------------------

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("CLOB API Homepage"))
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.svc.Snapshot())
}

func (s *Server) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	side := orderbook.Ask
	if req.BuyOrder {
		side = orderbook.Bid
	}

	res, err := s.svc.Submit(side, req.Price, req.Quantity)
	if err != nil {
		if errors.Is(err, orderbook.ErrInvalidOrder) {
			respondError(w, http.StatusBadRequest, "price and quantity must be positive")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	matches := make([]matchDetail, 0, len(res.Fills))
	for _, t := range res.Fills {
		matches = append(matches, matchDetail{
			Price:     t.Price,
			Quantity:  t.Qty,
			Timestamp: t.Time,
		})
	}

	respondJSON(w, http.StatusOK, createOrderResponse{
		Status:            "ok",
		OrderID:           res.OrderID.String(),
		FilledQuantity:    res.Filled,
		RemainingQuantity: res.Remaining,
		Matches:           matches,
	})
}

func (s *Server) handleOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	view, err := s.svc.Lookup(id)
	if err != nil {
		// Not resting: never existed, fully filled or cancelled.
		respondJSON(w, http.StatusOK, orderStatusResponse{
			OrderID: id.String(),
			Status:  "not_found",
		})
		return
	}

	respondJSON(w, http.StatusOK, orderStatusResponse{
		OrderID:         view.ID.String(),
		Status:          "open",
		CurrentQuantity: view.Remaining,
		IsBuy:           view.Side == orderbook.Bid,
		Price:           view.Price,
	})
}

func (s *Server) handleCancel(w http.ResponseWriter, r *http.Request) {
	var req cancelOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	id, err := uuid.Parse(req.OrderID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	res, err := s.svc.Cancel(id)
	if err != nil {
		if errors.Is(err, orderbook.ErrOrderNotFound) {
			respondError(w, http.StatusNotFound, "order not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, cancelOrderResponse{
		Status:           "ok",
		OrderID:          id.String(),
		ReleasedQuantity: res.Remaining,
	})
}

// handleTrades serves the trade-log tail: all trades, or only those
// with sequence strictly greater than ?since=N.
func (s *Server) handleTrades(w http.ResponseWriter, r *http.Request) {
	var since uint64
	if raw := r.URL.Query().Get("since"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid since parameter")
			return
		}
		since = parsed
	}

	trades := s.svc.TradesSince(since)
	if trades == nil {
		trades = []orderbook.Trade{}
	}
	respondJSON(w, http.StatusOK, trades)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status":      "healthy",
		"trade_count": s.svc.TradeCount(),
	})
}

// -------------------- Helpers --------------------

func respondJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, code int, msg string) {
	respondJSON(w, code, map[string]string{
		"status": "error",
		"error":  msg,
	})
}
