package handler

import (
	"webland/internal/controller"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

var ErrInvalidHandlerConfig = errors.New("invalid handler config")

// Handler mounts the widget routes onto a gin engine.
type Handler struct {
	engine     *gin.Engine
	controller *controller.Controller
	cryptoCh   <-chan []byte
	notifyCh   <-chan []byte
}

type Option func(*Handler)

func WithEngine(engine *gin.Engine) Option {
	return func(h *Handler) {
		h.engine = engine
	}
}

func WithController(ctrl *controller.Controller) Option {
	return func(h *Handler) {
		h.controller = ctrl
	}
}

func WithCryptoStream(ch <-chan []byte) Option {
	return func(h *Handler) {
		h.cryptoCh = ch
	}
}

func WithNotificationStream(ch <-chan []byte) Option {
	return func(h *Handler) {
		h.notifyCh = ch
	}
}

func (h *Handler) IsValid() error {
	switch {
	case h.engine == nil:
		return errors.Wrap(ErrInvalidHandlerConfig, "engine cannot be nil")
	case h.controller == nil:
		return errors.Wrap(ErrInvalidHandlerConfig, "controller cannot be nil")
	default:
		return nil
	}
}

func New(opts ...Option) (*Handler, error) {
	h := &Handler{}
	for _, opt := range opts {
		opt(h)
	}
	if err := h.IsValid(); err != nil {
		return nil, err
	}
	return h, nil
}

func (h *Handler) Setup() {
	ctrl := h.controller
	api := h.engine.Group("/api")

	notes := api.Group("/notes")
	notes.GET("", ctrl.ListNotes)
	notes.POST("", ctrl.CreateNote)
	notes.PUT("/:id", ctrl.UpdateNote)
	notes.DELETE("/:id", ctrl.DeleteNote)

	bookmarks := api.Group("/bookmarks")
	bookmarks.GET("", ctrl.ListBookmarks)
	bookmarks.POST("", ctrl.CreateBookmark)
	bookmarks.DELETE("/:id", ctrl.DeleteBookmark)

	todos := api.Group("/todos")
	todos.GET("", ctrl.ListTodos)
	todos.POST("", ctrl.CreateTodo)
	todos.PUT("/:id", ctrl.UpdateTodo)
	todos.DELETE("/:id", ctrl.DeleteTodo)

	api.GET("/weather", ctrl.Weather)
	api.POST("/translate", ctrl.Translate)
	api.GET("/tabs/active", ctrl.ActiveTab)

	settings := api.Group("/settings")
	settings.GET("/:key", ctrl.GetSetting)
	settings.PUT("/:key", ctrl.PutSetting)

	crypto := api.Group("/crypto")
	crypto.GET("/search", ctrl.SearchCoins)

	watchlist := crypto.Group("/watchlist")
	watchlist.GET("", ctrl.ListWatchlist)
	watchlist.POST("", ctrl.AddWatchlistEntry)
	watchlist.POST("/refresh", ctrl.RefreshWatchlist)
	watchlist.DELETE("/:id", ctrl.RemoveWatchlistEntry)

	cryptoNotes := crypto.Group("/notes")
	cryptoNotes.GET("", ctrl.ListCryptoNotes)
	cryptoNotes.POST("", ctrl.CreateCryptoNote)
	cryptoNotes.PUT("/:id", ctrl.UpdateCryptoNote)
	cryptoNotes.DELETE("/:id", ctrl.DeleteCryptoNote)

	links := crypto.Group("/links")
	links.GET("", ctrl.ListLinks)
	links.POST("", ctrl.CreateLink)
	links.DELETE("/:id", ctrl.DeleteLink)

	crypto.POST("/calculator", ctrl.Calculate)
	crypto.GET("/calculator/quote", ctrl.CalculatorQuote)

	calculations := crypto.Group("/calculations")
	calculations.GET("", ctrl.ListCalculations)
	calculations.POST("", ctrl.SaveCalculation)
	calculations.DELETE("/:id", ctrl.DeleteCalculation)

	portfolio := crypto.Group("/portfolio")
	portfolio.GET("", ctrl.ListPositions)
	portfolio.POST("", ctrl.CreatePosition)
	portfolio.GET("/summary", ctrl.PortfolioSummary)
	portfolio.GET("/allocation", ctrl.PortfolioAllocation)
	portfolio.POST("/refresh", ctrl.RefreshPortfolio)
	portfolio.PUT("/:id", ctrl.UpdatePosition)
	portfolio.DELETE("/:id", ctrl.DeletePosition)

	alerts := crypto.Group("/alerts")
	alerts.GET("", ctrl.ListAlerts)
	alerts.POST("", ctrl.CreateAlert)
	alerts.DELETE("/:id", ctrl.DeleteAlert)

	if h.cryptoCh != nil {
		crypto.GET("/stream", controller.SSECrypto(h.cryptoCh))
	}
	if h.notifyCh != nil {
		api.GET("/notifications/stream", controller.SSENotifications(h.notifyCh))
	}
}
