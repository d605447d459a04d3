package impl

import (
	"bytes"
	"context"
	"log/slog"
	"text/template"

	"authsvc/config"
	deliverycontext "authsvc/internal/delivery/context"
	"authsvc/internal/domain/entity"
	domainerrors "authsvc/internal/domain/errors"
	"authsvc/internal/domain/service"
	"authsvc/internal/errors"
	"authsvc/internal/usecase"

	"go.uber.org/fx"
)

const paymentSubject = "New Course Payment Received"

// paymentEmailTemplate is the plain-text body sent to the operator.
var paymentEmailTemplate = template.Must(template.New("payment").Parse(`A new course payment was submitted.

Student name:   {{.StudentName}}
Student email:  {{.StudentEmail}}
Course:         {{.Course}}
Price:          {{.Price}}
Payment method: {{.Method}}
Transaction ID: {{.TransactionID}}
`))

type paymentService struct {
	mailer   service.Mailer
	operator string
	logger   *slog.Logger
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	Mailer service.Mailer
	Config *config.Config
	Logger *slog.Logger
}

// NewPaymentService creates a PaymentUsecase that mails the configured operator address.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	var operator string
	if params.Config.Mail != nil {
		operator = params.Config.Mail.OperatorAddress
	}

	return &paymentService{
		mailer:   params.Mailer,
		operator: operator,
		logger:   params.Logger,
	}
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// NotifyPayment renders the payment email and sends it once.
func (srv *paymentService) NotifyPayment(ctx context.Context, payment *entity.Payment) error {
	var body bytes.Buffer
	if err := paymentEmailTemplate.Execute(&body, payment); err != nil {
		return srv.notificationFailed(ctx, payment, errors.Wrap(err, "failed to render payment email"))
	}

	msg := &service.Message{
		To:      srv.operator,
		Subject: paymentSubject,
		Body:    body.String(),
	}

	if err := srv.mailer.Send(ctx, msg); err != nil {
		return srv.notificationFailed(ctx, payment, errors.Wrap(err, "failed to send payment email"))
	}

	srv.log(ctx).Info("Payment notification sent",
		slog.String("studentEmail", payment.StudentEmail),
		slog.String("transactionID", payment.TransactionID),
	)

	return nil
}

func (srv *paymentService) notificationFailed(ctx context.Context, payment *entity.Payment, err error) error {
	srv.log(ctx).Error("Payment notification failed",
		slog.String("transactionID", payment.TransactionID),
		slog.Any("error", err),
	)

	return domainerrors.NewTransportError(err, domainerrors.ErrNotificationFailed)
}
