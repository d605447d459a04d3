package handler

import (
	"bytes"
	"encoding/json"
	"net/http"

	"authsvc/internal/delivery/http/response"
	"authsvc/internal/domain/entity"
	"authsvc/internal/usecase"

	"github.com/labstack/echo/v4"
)

const invalidPaymentMessage = "Invalid payment details"

// flexibleString accepts a JSON string, number or null.
type flexibleString string

func (s *flexibleString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""

		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = flexibleString(str)

		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*s = flexibleString(num.String())

	return nil
}

type paymentRequest struct {
	Name   string         `json:"name"`
	Email  string         `json:"email"`
	Course string         `json:"course"`
	Price  flexibleString `json:"price"`
	Method string         `json:"method"`
	TrxID  string         `json:"trxid"`
}

func (r *paymentRequest) toEntity() *entity.Payment {
	return &entity.Payment{
		StudentName:   r.Name,
		StudentEmail:  r.Email,
		Course:        r.Course,
		Price:         string(r.Price),
		Method:        r.Method,
		TransactionID: r.TrxID,
	}
}

// PaymentHandler serves payment confirmations.
type PaymentHandler struct {
	uc usecase.PaymentUsecase
}

// NewPaymentHandler is the constructor for PaymentHandler, injected by Fx.
func NewPaymentHandler(uc usecase.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// SendPayment emails the submitted payment details to the operator.
// Fields are forwarded as received, without validation.
func (h *PaymentHandler) SendPayment(c echo.Context) error {
	var req paymentRequest
	if err := c.Bind(&req); err != nil {
		return response.Failure(c, http.StatusBadRequest, invalidPaymentMessage)
	}

	if err := h.uc.NotifyPayment(c.Request().Context(), req.toEntity()); err != nil {
		return response.HandleAppFailure(c, err)
	}

	return response.JSON(c, http.StatusOK, response.StatusResponse{Success: true})
}
