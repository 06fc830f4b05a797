package api

import (
	"net/http"

	"github.com/Domenick1991/flightdesk/internal/service/customers"
	"github.com/Domenick1991/flightdesk/internal/service/reservation"
	"github.com/Domenick1991/flightdesk/internal/validate"
	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	service reservation.UseCase
}

type registerCustomerRequest struct {
	ID         string `json:"customer_id" binding:"required"`
	Name       string `json:"name" binding:"required"`
	PassportNo string `json:"passport_no" binding:"required"`
	Address    string `json:"address" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
}

func NewCustomerHandler(service reservation.UseCase) *CustomerHandler {
	return &CustomerHandler{service: service}
}

// Register mounts every customer route on staff; customer records are
// never served without the staff credential.
func (h *CustomerHandler) Register(_, staff *gin.RouterGroup) {
	staff.GET("/:passport", h.find)
	staff.POST("", h.create)
}

func (h *CustomerHandler) create(c *gin.Context) {
	var req registerCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	id, err := validate.CustomerID(req.ID)
	if err != nil {
		badRequest(c, err)
		return
	}
	phone, err := validate.Phone(req.Phone)
	if err != nil {
		badRequest(c, err)
		return
	}
	for field, value := range map[string]string{"Name": req.Name, "Passport number": req.PassportNo, "Address": req.Address} {
		if _, err := validate.Required(field)(value); err != nil {
			badRequest(c, err)
			return
		}
	}

	customer, err := h.service.RegisterCustomer(c.Request.Context(), customers.RegisterCustomerInput{
		ID:         id,
		Name:       req.Name,
		PassportNo: req.PassportNo,
		Address:    req.Address,
		Phone:      phone,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (h *CustomerHandler) find(c *gin.Context) {
	customer, err := h.service.FindCustomer(c.Request.Context(), c.Param("passport"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}
