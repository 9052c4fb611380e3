package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"travelbooking/internal/apperror"
	"travelbooking/internal/model"
	"travelbooking/internal/service"

	"github.com/gin-gonic/gin"
)

// Handler структурирует зависимости сервисов для обработки HTTP-запросов.
type Handler struct {
	AuthService        *service.AuthService
	UserService        *service.UserService
	DestinationService *service.DestinationService
	BookingService     *service.BookingService
	logger             *slog.Logger
}

// NewHandler создает новый Handler с внедрением зависимостей (сервисов).
func NewHandler(as *service.AuthService, us *service.UserService, ds *service.DestinationService,
	bs *service.BookingService, logger *slog.Logger) *Handler {
	registerDateTimeType()
	return &Handler{
		AuthService:        as,
		UserService:        us,
		DestinationService: ds,
		BookingService:     bs,
		logger:             logger,
	}
}

// Register регистрирует маршруты API на роутере.
func (h *Handler) Register(router gin.IRouter) {
	router.GET("/", h.Home)
	router.GET("/health", h.Health)
	router.POST("/registration", h.Registration)

	protected := router.Group("/", h.RequireBasicAuth())
	{
		protected.GET("/destinations", h.ListDestinations)
		protected.GET("/user/:user_id", h.GetUser)
		protected.POST("/user/:user_id/bookings", h.CreateBooking)
		protected.GET("/user/:user_id/bookings", h.ListBookings)
		protected.GET("/user/:user_id/bookings/:booking_id", h.GetBooking)
		protected.DELETE("/user/:user_id/bookings/:booking_id", h.DeleteBooking)
	}
}

// Home обработчик для GET / - HTML-приветствие.
func (h *Handler) Home(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte("<h1>Hello!</h1>"))
}

// Health обработчик для GET /health.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListDestinations обработчик для GET /destinations - возвращает справочник направлений.
func (h *Handler) ListDestinations(c *gin.Context) {
	c.JSON(http.StatusOK, h.DestinationService.Destinations())
}

// Registration обработчик для POST /registration - регистрирует учетную запись.
func (h *Handler) Registration(c *gin.Context) {
	var account model.Account
	if err := c.ShouldBindJSON(&account); err != nil {
		h.abortWithError(c, apperror.Unprocessable(err.Error()))
		return
	}
	id := h.UserService.Register(account)
	c.JSON(http.StatusOK, gin.H{"message": "Registration successful", "id": id})
}

// GetUser обработчик для GET /user/:user_id - возвращает учетную запись без пароля.
func (h *Handler) GetUser(c *gin.Context) {
	userID, ok := h.pathID(c, "user_id")
	if !ok {
		return
	}
	account, err := h.UserService.GetByID(userID)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

// CreateBooking обработчик для POST /user/:user_id/bookings.
func (h *Handler) CreateBooking(c *gin.Context) {
	userID, ok := h.pathID(c, "user_id")
	if !ok {
		return
	}
	var booking model.Booking
	if err := c.ShouldBindJSON(&booking); err != nil {
		h.abortWithError(c, apperror.Unprocessable(err.Error()))
		return
	}
	booking, err := h.BookingService.CreateBooking(userID, booking)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Booking confirmed", "details": booking})
}

// ListBookings обработчик для GET /user/:user_id/bookings.
func (h *Handler) ListBookings(c *gin.Context) {
	userID, ok := h.pathID(c, "user_id")
	if !ok {
		return
	}
	bookings, err := h.BookingService.ListBookings(userID)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBooking обработчик для GET /user/:user_id/bookings/:booking_id.
func (h *Handler) GetBooking(c *gin.Context) {
	userID, ok := h.pathID(c, "user_id")
	if !ok {
		return
	}
	bookingID, ok := h.pathID(c, "booking_id")
	if !ok {
		return
	}
	booking, err := h.BookingService.GetBooking(userID, bookingID)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// DeleteBooking обработчик для DELETE /user/:user_id/bookings/:booking_id.
func (h *Handler) DeleteBooking(c *gin.Context) {
	userID, ok := h.pathID(c, "user_id")
	if !ok {
		return
	}
	bookingID, ok := h.pathID(c, "booking_id")
	if !ok {
		return
	}
	if err := h.BookingService.DeleteBooking(userID, bookingID); err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, nil)
}

func (h *Handler) pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		h.abortWithError(c, apperror.Unprocessable(name+" must be an integer"))
		return 0, false
	}
	return id, true
}

// abortWithError отвечает клиенту статусом из apperror; прочие ошибки считаются внутренними.
func (h *Handler) abortWithError(c *gin.Context, err error) {
	if appErr, ok := apperror.From(err); ok {
		c.AbortWithStatusJSON(appErr.Status, gin.H{"detail": appErr.Message})
		return
	}
	h.requestLogger(c).Error("request failed", "path", c.FullPath(), "error", err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "Internal Server Error"})
}
