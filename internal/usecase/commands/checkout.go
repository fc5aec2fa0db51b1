package commands

import (
	"context"
	"log/slog"

	"dogcatify-core/internal/domain/booking"
	"dogcatify-core/internal/domain/order"
	"dogcatify-core/internal/domain/partner"
	"dogcatify-core/internal/domain/pricing"
	reqdto "dogcatify-core/internal/handler/dto/request"
	"dogcatify-core/internal/infra"
	"dogcatify-core/internal/infra/db"
	"dogcatify-core/internal/infra/mercadopago"
	"dogcatify-core/internal/pkg/clock"
	"dogcatify-core/internal/pkg/config"
	"dogcatify-core/internal/pkg/errs"
	"dogcatify-core/internal/usecase/queries"
	"dogcatify-core/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var (
	ErrPartnerNotFound          = errs.New("partner not found")
	ErrPartnerConfigInvalid     = errs.New("partner payment configuration invalid")
	ErrCheckoutValidation       = errs.New("checkout validation error")
	ErrBookingRequired          = errs.New("service checkout requires booking details")
	ErrPreferenceCreationFailed = errs.New("payment preference creation failed")
	ErrOrderConflict            = errs.New("order modified concurrently")
	ErrDatabaseOperationFailed  = errs.New("database operation failed")
)

type CheckoutResult struct {
	Order        *queries.OrderView
	PreferenceID string
	CheckoutURL  string
}

type CheckoutCommands interface {
	Checkout(ctx context.Context, req reqdto.CheckoutRequest, customerID uuid.UUID) (*CheckoutResult, error)
}

type checkoutUseCaseImpl struct {
	orderRepo    OrderRepository
	bookingRepo  BookingRepository
	partnerRepo  PartnerRepository
	gateway      PaymentGateway
	orderQueries queries.OrderQueries
	db           *pgxpool.Pool
	clock        clock.Clock
	baseURL      string
	commission   decimal.Decimal
}

func NewCheckoutUseCase(
	orderRepo OrderRepository,
	bookingRepo BookingRepository,
	partnerRepo PartnerRepository,
	gateway PaymentGateway,
	orderQueries queries.OrderQueries,
	db *pgxpool.Pool,
	clock clock.Clock,
	cfg config.Config,
) CheckoutCommands {
	return &checkoutUseCaseImpl{
		orderRepo:    orderRepo,
		bookingRepo:  bookingRepo,
		partnerRepo:  partnerRepo,
		gateway:      gateway,
		orderQueries: orderQueries,
		db:           db,
		clock:        clock,
		baseURL:      cfg.Server.PublicBaseURL,
		commission:   decimal.NewFromFloat(cfg.Platform.DefaultCommissionPct),
	}
}

func (c *checkoutUseCaseImpl) Checkout(
	ctx context.Context,
	req reqdto.CheckoutRequest,
	customerID uuid.UUID,
) (*CheckoutResult, error) {
	account, err := c.resolvePartner(ctx, req.PartnerID)
	if err != nil {
		return nil, err
	}

	orderEntity, bookingEntity, err := c.buildEntities(req, customerID, account)
	if err != nil {
		return nil, err
	}

	if err := c.persistOrder(ctx, orderEntity, bookingEntity); err != nil {
		return nil, err
	}

	pref, err := c.gateway.CreatePreference(ctx, account.Credentials(), c.buildPreferenceRequest(req, orderEntity, account))
	if err != nil {
		c.rollbackOrder(ctx, orderEntity.ID())
		return nil, errs.Mark(err, ErrPreferenceCreationFailed)
	}

	rows, err := c.orderRepo.AttachPreference(ctx, orderEntity.ID(), pref.ID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if rows == 0 {
		// A concurrent sweep cancelled the order between insert and
		// attach. The preference is now orphaned on the gateway side;
		// it expires there on its own.
		return nil, ErrOrderConflict
	}

	view, err := c.orderQueries.GetByID(ctx, orderEntity.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &CheckoutResult{
		Order:        view,
		PreferenceID: pref.ID,
		CheckoutURL:  pref.CheckoutURL,
	}, nil
}

// resolvePartner loads the partner and proves its gateway credentials work
// before anything is written. A partner with a dead token fails here, not
// halfway through checkout.
func (c *checkoutUseCaseImpl) resolvePartner(ctx context.Context, partnerID uuid.UUID) (*partner.Account, error) {
	snap, err := c.partnerRepo.FindByID(ctx, partnerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPartnerNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	creds, err := partner.NewCredentials(snap.AccessToken, snap.PublicKey, snap.RefreshToken, partner.ConnectionMode(snap.ConnectionMode))
	if err != nil {
		return nil, errs.Mark(err, ErrPartnerConfigInvalid)
	}

	if err := c.gateway.ValidateCredentials(ctx, creds.AccessToken()); err != nil {
		return nil, errs.Mark(err, ErrPartnerConfigInvalid)
	}

	account, err := partner.NewAccount(snap.ID, snap.CommissionOverride, snap.TaxRate, snap.TaxIncluded, creds, snap.MPUserID)
	if err != nil {
		return nil, errs.Mark(err, ErrPartnerConfigInvalid)
	}
	return account, nil
}

func (c *checkoutUseCaseImpl) buildEntities(
	req reqdto.CheckoutRequest,
	customerID uuid.UUID,
	account *partner.Account,
) (*order.Order, *booking.Booking, error) {
	lineItems := req.ToLineItems()

	breakdown, err := pricing.ComputeTax(lineItems, account.TaxRate(), account.TaxIncluded())
	if err != nil {
		return nil, nil, errs.Mark(err, ErrCheckoutValidation)
	}

	shipping := req.GetShippingCost()
	if shipping.IsNegative() {
		return nil, nil, errs.Mark(errs.New("negative shipping cost"), ErrCheckoutValidation)
	}
	total := breakdown.Total.Add(shipping)

	split, err := pricing.ComputeCommission(total, account.CommissionPct(c.commission))
	if err != nil {
		return nil, nil, errs.Mark(err, ErrCheckoutValidation)
	}

	items, err := c.buildOrderItems(req, lineItems, account)
	if err != nil {
		return nil, nil, err
	}

	orderEntity, err := order.NewOrder(order.Spec{
		PartnerID:        account.ID(),
		CustomerID:       customerID,
		Items:            items,
		Subtotal:         breakdown.Subtotal,
		TaxAmount:        breakdown.TaxAmount,
		ShippingCost:     shipping,
		TotalAmount:      total,
		CommissionAmount: split.CommissionAmount,
		PartnerAmount:    split.PartnerAmount,
		Kind:             req.GetKind(),
	})
	if err != nil {
		return nil, nil, errs.Mark(err, ErrCheckoutValidation)
	}

	var bookingEntity *booking.Booking
	if orderEntity.IsService() {
		if req.Booking == nil {
			return nil, nil, ErrBookingRequired
		}
		bookingEntity, err = booking.NewBooking(
			orderEntity.ID(), req.Booking.ServiceID, account.ID(), customerID,
			req.Booking.PetID, req.Booking.ScheduledFor, c.clock.Now(),
		)
		if err != nil {
			return nil, nil, errs.Mark(err, ErrCheckoutValidation)
		}
	}

	return orderEntity, bookingEntity, nil
}

func (c *checkoutUseCaseImpl) buildOrderItems(
	req reqdto.CheckoutRequest,
	lineItems []pricing.LineItem,
	account *partner.Account,
) ([]order.Item, error) {
	items := make([]order.Item, len(lineItems))
	for i, li := range lineItems {
		itemBreakdown, err := pricing.ItemTaxBreakdown(li, account.TaxRate(), account.TaxIncluded())
		if err != nil {
			return nil, errs.Mark(err, ErrCheckoutValidation)
		}
		items[i] = order.Item{
			Name:      req.Items[i].Name,
			UnitPrice: li.UnitPrice,
			Quantity:  li.Quantity,
			TaxRate:   li.TaxRate,
			Subtotal:  itemBreakdown.Subtotal,
			TaxAmount: itemBreakdown.TaxAmount,
			Discount:  li.Discount,
			Currency:  req.Currency,
		}
	}
	return items, nil
}

// maxPersistRetries bounds serialization/deadlock retries on the insert tx.
const maxPersistRetries = 3

func (c *checkoutUseCaseImpl) persistOrder(ctx context.Context, o *order.Order, b *booking.Booking) error {
	_, err := shared.RunInTxWithRetry(ctx, c.db, maxPersistRetries, func(tx db.DBTX) (struct{}, error) {
		if err := c.orderRepo.Create(ctx, tx, o); err != nil {
			return struct{}{}, err
		}
		if b != nil {
			if err := c.bookingRepo.Create(ctx, tx, b); err != nil {
				return struct{}{}, err
			}
		}
		return struct{}{}, nil
	})
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// rollbackOrder compensates for a failed gateway call: the committed order
// and booking rows come back out. Conditional SQL keeps this safe against a
// webhook racing us, and a failed rollback is logged, not surfaced, because
// the caller already has the real error.
func (c *checkoutUseCaseImpl) rollbackOrder(ctx context.Context, orderID uuid.UUID) {
	_, err := shared.RunInTx(ctx, c.db, func(tx db.DBTX) (struct{}, error) {
		if _, err := c.bookingRepo.DeleteByOrderID(ctx, tx, orderID); err != nil {
			return struct{}{}, err
		}
		rows, err := c.orderRepo.Delete(ctx, tx, orderID)
		if err != nil {
			return struct{}{}, err
		}
		if rows == 0 {
			return struct{}{}, errs.New("order no longer deletable")
		}
		return struct{}{}, nil
	})
	if err != nil {
		slog.Warn("failed to roll back order after gateway failure",
			"order_id", orderID, "error", err)
	}
}

func (c *checkoutUseCaseImpl) buildPreferenceRequest(
	req reqdto.CheckoutRequest,
	o *order.Order,
	account *partner.Account,
) mercadopago.PreferenceRequest {
	items := make([]mercadopago.PreferenceItem, 0, len(o.Items())+2)
	for _, it := range o.Items() {
		items = append(items, mercadopago.PreferenceItem{
			Title:      it.Name,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice.Sub(it.Discount.Div(decimal.NewFromInt32(it.Quantity))).InexactFloat64(),
			CurrencyID: it.Currency,
		})
	}

	// Line items carry raw prices, so the charge needs synthetic lines for
	// exclusive tax and shipping to collect exactly the order total.
	if !account.TaxIncluded() && o.TaxAmount().IsPositive() {
		items = append(items, mercadopago.PreferenceItem{
			Title:      "Tax",
			Quantity:   1,
			UnitPrice:  o.TaxAmount().InexactFloat64(),
			CurrencyID: req.Currency,
		})
	}
	if o.ShippingCost().IsPositive() {
		items = append(items, mercadopago.PreferenceItem{
			Title:      "Shipping",
			Quantity:   1,
			UnitPrice:  o.ShippingCost().InexactFloat64(),
			CurrencyID: req.Currency,
		})
	}

	// The return redirect carries the order id so the frontend can show
	// the right order without a session.
	returnQuery := "?order_id=" + o.ID().String()
	prefReq := mercadopago.PreferenceRequest{
		Items: items,
		BackURLs: mercadopago.BackURLs{
			Success: c.baseURL + "/payment/success" + returnQuery,
			Pending: c.baseURL + "/payment/pending" + returnQuery,
			Failure: c.baseURL + "/payment/failure" + returnQuery,
		},
		NotificationURL:   c.baseURL + "/api/webhooks/mercadopago",
		ExternalReference: o.ExternalReference(),
	}

	if email := req.GetPayerEmail(); email != nil {
		prefReq.Payer = &mercadopago.PreferencePayer{Email: *email}
	}

	// Split fields only travel on production OAuth credentials: the
	// gateway rejects them under test or manually pasted tokens.
	if account.Credentials().AllowsSplit() {
		fee := o.CommissionAmount().InexactFloat64()
		prefReq.MarketplaceFee = &fee
		prefReq.CollectorID = account.MPUserID()
	}

	return prefReq
}
