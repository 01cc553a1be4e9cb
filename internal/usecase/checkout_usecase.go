package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"storefront/internal/domain/entities"
	"storefront/internal/logging"
	"storefront/internal/metrics"
	"storefront/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrGiftCardAlreadyApplied      = errors.New("gift card already applied")
	ErrShippingInfoMissing         = errors.New("shipping information missing")
	ErrEmptyCart                   = errors.New("cart is empty")
	ErrPaymentInProgress           = errors.New("payment already in progress")
	ErrPaymentFailed               = errors.New("payment failed")
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
	errPaymentNotApproved          = errors.New("payment not approved")
)

// Shopper-facing messages.
const (
	MsgGiftCardAlreadyApplied = "A gift card is already applied. Remove it first to use a different one."
	MsgShippingInfoMissing    = "Please fill in shipping information"
	MsgEmptyCart              = "Your cart is empty"
	MsgPaymentFailed          = "Payment failed. Please try again."
)

// Navigation targets returned to the caller.
const (
	RoutePaymentSuccess = "/PaymentSuccess"
	RouteCart           = "/cart"
)

const paymentDescription = "Storefront order"

// ICheckoutUseCase drives shipping -> payment -> processing -> success|failed.
type ICheckoutUseCase interface {
	State() entities.CheckoutState
	AppliedGiftCard() *entities.AppliedGiftCard
	LoadCartProducts(ctx context.Context) (entities.CheckoutState, error)
	EnterCheckout(ctx context.Context) (redirectTo string, err error)
	ApplyGiftCard(ctx context.Context, code string) (entities.RedeemResult, error)
	RemoveGiftCard(ctx context.Context) error
	SetShippingInfo(info entities.ShippingInfo)
	SetPaymentInfo(info entities.PaymentInfo)
	ProcessPayment(ctx context.Context) (entities.PaymentResult, error)
	ClearCheckout()
	Subscribe(fn func(entities.CheckoutState)) (unsubscribe func())
}

type CheckoutConfig struct {
	Pricing      PricingRules
	PaymentDelay time.Duration
}

type CheckoutUseCase struct {
	// mu guards state. giftCardMu serializes apply/remove so two redemptions
	// cannot both pass the "already applied" check.
	mu         sync.Mutex
	giftCardMu sync.Mutex
	state      entities.CheckoutState

	cart      CartReader
	giftCards GiftCardRedeemer
	applied   interfaces.IAppliedGiftCardRepository
	gateway   interfaces.IPaymentGateway
	delayer   interfaces.IDelayer
	cfg       CheckoutConfig
	subs      subscribers[entities.CheckoutState]
	log       *slog.Logger
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

// NewCheckoutUseCase restores the applied gift card first and then the cart,
// so the loaded totals already account for the discount.
func NewCheckoutUseCase(
	ctx context.Context,
	cart CartReader,
	giftCards GiftCardRedeemer,
	applied interfaces.IAppliedGiftCardRepository,
	gateway interfaces.IPaymentGateway,
	delayer interfaces.IDelayer,
	cfg CheckoutConfig,
) (*CheckoutUseCase, error) {
	u := &CheckoutUseCase{
		state:     initialCheckoutState(),
		cart:      cart,
		giftCards: giftCards,
		applied:   applied,
		gateway:   gateway,
		delayer:   delayer,
		cfg:       cfg,
		log:       logging.New("checkout"),
	}

	card, err := applied.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load applied gift card: %w", err)
	}
	if card != nil {
		u.state.AppliedGiftCard = card
		u.state.GiftCardDiscount = card.Amount
	}

	if _, err := u.LoadCartProducts(ctx); err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	return u, nil
}

func initialCheckoutState() entities.CheckoutState {
	return entities.CheckoutState{
		CartProducts: []entities.CartLine{},
		Step:         entities.CheckoutStepShipping,
	}
}

func (u *CheckoutUseCase) State() entities.CheckoutState {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state.Clone()
}

func (u *CheckoutUseCase) AppliedGiftCard() *entities.AppliedGiftCard {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.state.AppliedGiftCard == nil {
		return nil
	}
	card := *u.state.AppliedGiftCard
	return &card
}

// LoadCartProducts re-reads the cart and recomputes the derived amounts. The
// current discount is kept as-is.
func (u *CheckoutUseCase) LoadCartProducts(ctx context.Context) (entities.CheckoutState, error) {
	lines, err := u.cart.Lines(ctx)
	if err != nil {
		return entities.CheckoutState{}, err
	}

	totals := u.cfg.Pricing.Totals(lines)
	return u.update(func(s *entities.CheckoutState) {
		s.CartProducts = lines
		s.Subtotal = totals.Subtotal
		s.Shipping = totals.Shipping
		s.Tax = totals.Tax
		s.Total = totals.Total(s.GiftCardDiscount)
	}), nil
}

// EnterCheckout reloads the cart and returns RouteCart when there is nothing
// to check out. A finished checkout starts over from the initial state.
func (u *CheckoutUseCase) EnterCheckout(ctx context.Context) (string, error) {
	u.mu.Lock()
	finished := u.state.Step.IsTerminal()
	u.mu.Unlock()
	if finished {
		u.ClearCheckout()
	}

	state, err := u.LoadCartProducts(ctx)
	if err != nil {
		return "", err
	}
	if len(state.CartProducts) == 0 {
		return RouteCart, nil
	}
	return "", nil
}

func (u *CheckoutUseCase) ApplyGiftCard(ctx context.Context, code string) (entities.RedeemResult, error) {
	u.giftCardMu.Lock()
	defer u.giftCardMu.Unlock()

	if u.AppliedGiftCard() != nil {
		return entities.RedeemResult{Success: false, Message: MsgGiftCardAlreadyApplied}, ErrGiftCardAlreadyApplied
	}

	result, err := u.giftCards.RedeemGiftCard(ctx, code)
	if err != nil {
		u.log.Info("[checkout][usecase] gift card rejected", "error", err.Error())
		return result, err
	}

	card := entities.AppliedGiftCard{Code: code, Amount: result.Amount}
	if err := u.applied.Save(ctx, card); err != nil {
		err = fmt.Errorf("persist applied gift card: %w", err)
		if rerr := u.giftCards.RevertRedemption(context.WithoutCancel(ctx), code); rerr != nil {
			u.log.Error("[checkout][usecase] gift card revert failed", "error", rerr.Error())
			return entities.RedeemResult{}, errors.Join(err, fmt.Errorf("revert redemption: %w", rerr))
		}
		return entities.RedeemResult{}, err
	}

	u.update(func(s *entities.CheckoutState) {
		totals := Totals{Subtotal: s.Subtotal, Shipping: s.Shipping, Tax: s.Tax}
		s.AppliedGiftCard = &card
		s.GiftCardDiscount = totals.DiscountFor(card.Amount)
		s.Total = totals.Total(s.GiftCardDiscount)
	})
	u.log.Info("[checkout][usecase] gift card applied", "amount", card.Amount)
	return result, nil
}

func (u *CheckoutUseCase) RemoveGiftCard(ctx context.Context) error {
	u.giftCardMu.Lock()
	defer u.giftCardMu.Unlock()

	if err := u.applied.Clear(ctx); err != nil {
		return fmt.Errorf("clear applied gift card: %w", err)
	}
	u.update(func(s *entities.CheckoutState) {
		totals := Totals{Subtotal: s.Subtotal, Shipping: s.Shipping, Tax: s.Tax}
		s.AppliedGiftCard = nil
		s.GiftCardDiscount = 0
		s.Total = totals.Total(0)
	})
	return nil
}

// SetShippingInfo stores already validated shipping details and moves the
// flow to the payment step.
func (u *CheckoutUseCase) SetShippingInfo(info entities.ShippingInfo) {
	u.update(func(s *entities.CheckoutState) {
		s.ShippingInfo = &info
		s.Step = entities.CheckoutStepPayment
	})
}

func (u *CheckoutUseCase) SetPaymentInfo(info entities.PaymentInfo) {
	u.update(func(s *entities.CheckoutState) {
		s.PaymentInfo = &info
	})
}

// ProcessPayment charges the current total. Once started it runs to
// completion even if ctx is cancelled.
func (u *CheckoutUseCase) ProcessPayment(ctx context.Context) (entities.PaymentResult, error) {
	u.mu.Lock()
	switch {
	case u.state.ShippingInfo == nil:
		u.state.Error = MsgShippingInfoMissing
		snapshot := u.state.Clone()
		u.mu.Unlock()
		u.subs.notify(snapshot)
		return entities.PaymentResult{}, ErrShippingInfoMissing
	case len(u.state.CartProducts) == 0:
		u.state.Error = MsgEmptyCart
		snapshot := u.state.Clone()
		u.mu.Unlock()
		u.subs.notify(snapshot)
		return entities.PaymentResult{}, ErrEmptyCart
	case u.state.IsProcessing:
		u.mu.Unlock()
		return entities.PaymentResult{}, ErrPaymentInProgress
	}

	u.state.IsProcessing = true
	u.state.Error = ""
	u.state.Step = entities.CheckoutStepProcessing
	req := entities.ChargeRequest{
		Amount:            u.state.Total,
		Description:       paymentDescription,
		PayerEmail:        u.state.ShippingInfo.Email,
		ExternalReference: uuid.NewString(),
	}
	if u.state.PaymentInfo != nil {
		card := *u.state.PaymentInfo
		req.Card = &card
	}
	snapshot := u.state.Clone()
	u.mu.Unlock()
	u.subs.notify(snapshot)

	payCtx := context.WithoutCancel(ctx)
	u.log.Info("[checkout][usecase] process-payment start", "reference", req.ExternalReference, "total", req.Amount)

	if err := u.charge(payCtx, req); err != nil {
		metrics.Payments.WithLabelValues(metrics.OutcomeFailure).Inc()
		u.log.Warn("[checkout][usecase] process-payment failed", "reference", req.ExternalReference, "error", err.Error())
		u.update(func(s *entities.CheckoutState) {
			s.IsProcessing = false
			s.Error = MsgPaymentFailed
			s.Step = entities.CheckoutStepFailed
		})
		return entities.PaymentResult{Success: false}, fmt.Errorf("%w: %v", ErrPaymentFailed, err)
	}

	if err := u.applied.Clear(payCtx); err != nil {
		u.log.Warn("[checkout][usecase] clearing applied gift card failed", "error", err.Error())
	}
	u.update(func(s *entities.CheckoutState) {
		totals := Totals{Subtotal: s.Subtotal, Shipping: s.Shipping, Tax: s.Tax}
		s.AppliedGiftCard = nil
		s.GiftCardDiscount = 0
		s.Total = totals.Total(0)
		s.IsProcessing = false
		s.Step = entities.CheckoutStepSuccess
	})
	metrics.Payments.WithLabelValues(metrics.OutcomeSuccess).Inc()
	u.log.Info("[checkout][usecase] process-payment success", "reference", req.ExternalReference)

	return entities.PaymentResult{Success: true, RedirectTo: RoutePaymentSuccess}, nil
}

func (u *CheckoutUseCase) charge(ctx context.Context, req entities.ChargeRequest) error {
	if err := u.delayer.Wait(ctx, u.cfg.PaymentDelay); err != nil {
		return err
	}
	if u.gateway == nil {
		return ErrPaymentGatewayNotConfigured
	}
	res, err := u.gateway.Charge(ctx, req)
	if err != nil {
		return err
	}
	if res.Status != entities.ChargeStatusApproved {
		return fmt.Errorf("%w: status=%s", errPaymentNotApproved, res.Status)
	}
	return nil
}

// ClearCheckout resets the in-memory state. Persisted data is left alone.
func (u *CheckoutUseCase) ClearCheckout() {
	u.update(func(s *entities.CheckoutState) {
		*s = initialCheckoutState()
	})
}

func (u *CheckoutUseCase) Subscribe(fn func(entities.CheckoutState)) func() {
	return u.subs.add(fn)
}

// update applies fn under the state lock and notifies subscribers with the
// resulting snapshot.
func (u *CheckoutUseCase) update(fn func(s *entities.CheckoutState)) entities.CheckoutState {
	u.mu.Lock()
	fn(&u.state)
	snapshot := u.state.Clone()
	u.mu.Unlock()

	u.subs.notify(snapshot)
	return snapshot
}
