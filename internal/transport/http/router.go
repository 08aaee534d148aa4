package http

import (
	"context"
	"strconv"
	"time"

	fiber "github.com/gofiber/fiber/v2"
	swagger "github.com/gofiber/swagger"

	"github.com/thisisbigmike/deriversedashboard/internal/analytics"
	"github.com/thisisbigmike/deriversedashboard/internal/demo"
	"github.com/thisisbigmike/deriversedashboard/internal/domain"
	"github.com/thisisbigmike/deriversedashboard/internal/usecase"
)

type TradeService interface {
	SaveTrades(ctx context.Context, ownerID string, trades []domain.Trade) (int, error)
	ListTrades(ctx context.Context, ownerID string, limit int) ([]domain.Trade, error)
}

type AnalyticsService interface {
	Dashboard(ctx context.Context, ownerID string, filter analytics.Filter, equity float64, limit int) (domain.Dashboard, error)
}

type JournalService interface {
	UpdateTradeNote(ctx context.Context, ownerID, tradeID, note string) (domain.JournalEntry, error)
	ListEntries(ctx context.Context, ownerID string, limit int) ([]domain.JournalEntry, error)
	DeleteEntry(ctx context.Context, ownerID, entryID string) error
}

type QuoteService interface {
	Refresh(ctx context.Context) (int, error)
	Snapshot(ctx context.Context) (domain.QuoteSnapshot, error)
}

type Router struct {
	app              *fiber.App
	tradeService     TradeService
	analyticsService AnalyticsService
	journalService   JournalService
	quoteService     QuoteService
}

func New(trades TradeService, metrics AnalyticsService, journal JournalService, quotes QuoteService) *Router {
	app := fiber.New()

	r := &Router{
		app:              app,
		tradeService:     trades,
		analyticsService: metrics,
		journalService:   journal,
		quoteService:     quotes,
	}

	api := app.Group("/api")
	v1 := api.Group("/v1")

	v1.Get("/users/:owner_id/trades", r.listTrades)
	v1.Post("/users/:owner_id/trades", r.saveTrades)
	v1.Put("/users/:owner_id/trades/:trade_id/note", r.updateTradeNote)
	v1.Get("/users/:owner_id/dashboard", r.getDashboard)
	v1.Get("/users/:owner_id/journal", r.listJournal)
	v1.Delete("/users/:owner_id/journal/:entry_id", r.deleteJournalEntry)
	v1.Get("/quotes", r.getQuotes)
	v1.Post("/quotes/refresh", r.refreshQuotes)
	v1.Get("/demo/dashboard", r.getDemoDashboard)

	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	return r
}

func (r *Router) App() *fiber.App {
	return r.app
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func queryInt(c *fiber.Ctx, key string, fallback int) int {
	if v := c.Query(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			return parsed
		}
	}
	return fallback
}

func queryFloat(c *fiber.Ctx, key string) float64 {
	if v := c.Query(key); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			return parsed
		}
	}
	return 0
}

func filterFromQuery(c *fiber.Ctx) analytics.Filter {
	f := analytics.DefaultFilter()
	if v := c.Query("symbol"); v != "" {
		f.Symbol = v
	}
	if v := c.Query("order_type"); v != "" {
		f.OrderType = v
	}
	if v := c.Query("side"); v != "" {
		f.Side = v
	}
	if v := c.Query("timeframe"); v != "" {
		f.Timeframe = analytics.Timeframe(v)
	}
	return f
}

type TradesRequest struct {
	Trades []domain.Trade `json:"trades"`
}

type NoteRequest struct {
	Note string `json:"note"`
}

// listTrades godoc
// @Summary List stored trades for an owner
// @Tags trades
// @Produce json
// @Param owner_id path string true "Owner ID"
// @Param limit query int false "Maximum number of trades"
// @Success 200 {array} domain.Trade
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /users/{owner_id}/trades [get]
func (r *Router) listTrades(c *fiber.Ctx) error {
	if r.tradeService == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "trade service unavailable")
	}

	ownerID := c.Params("owner_id")
	if ownerID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "owner_id required")
	}

	ctx, cancel := context.WithTimeout(userContext(c), 10*time.Second)
	defer cancel()

	trades, err := r.tradeService.ListTrades(ctx, ownerID, queryInt(c, "limit", 1000))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(trades)
}

// saveTrades godoc
// @Summary Bulk upsert trades for an owner
// @Description Incoming trades are merged against stored history: records sharing an id are overridden, stored-only records are preserved.
// @Tags trades
// @Accept json
// @Produce json
// @Param owner_id path string true "Owner ID"
// @Param request body TradesRequest true "Trade batch"
// @Success 201 {object} map[string]int
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /users/{owner_id}/trades [post]
func (r *Router) saveTrades(c *fiber.Ctx) error {
	if r.tradeService == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "trade service unavailable")
	}

	ownerID := c.Params("owner_id")
	if ownerID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "owner_id required")
	}

	var payload TradesRequest
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if len(payload.Trades) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "trades required")
	}

	ctx, cancel := context.WithTimeout(userContext(c), 30*time.Second)
	defer cancel()

	count, err := r.tradeService.SaveTrades(ctx, ownerID, payload.Trades)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"saved": count})
}

// updateTradeNote godoc
// @Summary Attach or clear a note on a trade
// @Description A non-empty note upserts the trade's journal entry; an empty note removes it.
// @Tags journal
// @Accept json
// @Produce json
// @Param owner_id path string true "Owner ID"
// @Param trade_id path string true "Trade ID"
// @Param request body NoteRequest true "Note payload"
// @Success 200 {object} domain.JournalEntry
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /users/{owner_id}/trades/{trade_id}/note [put]
func (r *Router) updateTradeNote(c *fiber.Ctx) error {
	if r.journalService == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "journal service unavailable")
	}

	ownerID := c.Params("owner_id")
	tradeID := c.Params("trade_id")
	if ownerID == "" || tradeID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "owner_id and trade_id required")
	}

	var payload NoteRequest
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}

	ctx, cancel := context.WithTimeout(userContext(c), 10*time.Second)
	defer cancel()

	entry, err := r.journalService.UpdateTradeNote(ctx, ownerID, tradeID, payload.Note)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(entry)
}

// getDashboard godoc
// @Summary Compute the analytics dashboard for an owner
// @Tags analytics
// @Produce json
// @Param owner_id path string true "Owner ID"
// @Param symbol query string false "Symbol filter (default all)"
// @Param order_type query string false "Order type filter: MARKET, LIMIT, STOP (default all)"
// @Param side query string false "Side filter: LONG, SHORT (default all)"
// @Param timeframe query string false "Timeframe: 7D, 30D, 90D, ALL (default 30D)"
// @Param equity query number false "Current account equity used to derive the baseline"
// @Param limit query int false "Maximum history window"
// @Success 200 {object} domain.Dashboard
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /users/{owner_id}/dashboard [get]
func (r *Router) getDashboard(c *fiber.Ctx) error {
	if r.analyticsService == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "analytics service unavailable")
	}

	ownerID := c.Params("owner_id")
	if ownerID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "owner_id required")
	}

	ctx, cancel := context.WithTimeout(userContext(c), 30*time.Second)
	defer cancel()

	dashboard, err := r.analyticsService.Dashboard(
		ctx,
		ownerID,
		filterFromQuery(c),
		queryFloat(c, "equity"),
		queryInt(c, "limit", 1000),
	)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(dashboard)
}

// listJournal godoc
// @Summary List journal entries for an owner
// @Tags journal
// @Produce json
// @Param owner_id path string true "Owner ID"
// @Param limit query int false "Maximum number of entries"
// @Success 200 {array} domain.JournalEntry
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /users/{owner_id}/journal [get]
func (r *Router) listJournal(c *fiber.Ctx) error {
	if r.journalService == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "journal service unavailable")
	}

	ownerID := c.Params("owner_id")
	if ownerID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "owner_id required")
	}

	ctx, cancel := context.WithTimeout(userContext(c), 10*time.Second)
	defer cancel()

	entries, err := r.journalService.ListEntries(ctx, ownerID, queryInt(c, "limit", 100))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(entries)
}

// deleteJournalEntry godoc
// @Summary Delete a journal entry
// @Tags journal
// @Produce json
// @Param owner_id path string true "Owner ID"
// @Param entry_id path string true "Entry ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /users/{owner_id}/journal/{entry_id} [delete]
func (r *Router) deleteJournalEntry(c *fiber.Ctx) error {
	if r.journalService == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "journal service unavailable")
	}

	ownerID := c.Params("owner_id")
	entryID := c.Params("entry_id")
	if ownerID == "" || entryID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "owner_id and entry_id required")
	}

	ctx, cancel := context.WithTimeout(userContext(c), 10*time.Second)
	defer cancel()

	if err := r.journalService.DeleteEntry(ctx, ownerID, entryID); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{"status": "deleted"})
}

// getQuotes godoc
// @Summary Get the latest market quotes
// @Description Serves the cached snapshot; when the upstream feed is down the last good snapshot is returned marked stale.
// @Tags quotes
// @Produce json
// @Success 200 {object} domain.QuoteSnapshot
// @Failure 502 {object} map[string]string
// @Router /quotes [get]
func (r *Router) getQuotes(c *fiber.Ctx) error {
	if r.quoteService == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "quote service unavailable")
	}

	ctx, cancel := context.WithTimeout(userContext(c), 20*time.Second)
	defer cancel()

	snapshot, err := r.quoteService.Snapshot(ctx)
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, err.Error())
	}

	return c.JSON(snapshot)
}

// refreshQuotes godoc
// @Summary Trigger a quote refresh
// @Tags quotes
// @Produce json
// @Success 200 {object} map[string]int
// @Failure 502 {object} map[string]string
// @Router /quotes/refresh [post]
func (r *Router) refreshQuotes(c *fiber.Ctx) error {
	if r.quoteService == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "quote service unavailable")
	}

	ctx, cancel := context.WithTimeout(userContext(c), 30*time.Second)
	defer cancel()

	count, err := r.quoteService.Refresh(ctx)
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, err.Error())
	}

	return c.JSON(fiber.Map{"refreshed": count})
}

// getDemoDashboard godoc
// @Summary Compute a dashboard over synthetic demo trades
// @Description Guest mode: generates deterministic demo history and runs the full analytics pipeline over it.
// @Tags analytics
// @Produce json
// @Param days query int false "Days of demo history (default 90)"
// @Param timeframe query string false "Timeframe: 7D, 30D, 90D, ALL (default 30D)"
// @Success 200 {object} domain.Dashboard
// @Router /demo/dashboard [get]
func (r *Router) getDemoDashboard(c *fiber.Ctx) error {
	days := queryInt(c, "days", 90)
	now := time.Now().UTC()

	trades := demo.GenerateTrades(days, now, 1)
	filtered := filterFromQuery(c).Apply(trades, now)

	return c.JSON(usecase.BuildDashboard(filtered, 0, now))
}
