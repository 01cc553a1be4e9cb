package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"storefront/internal/domain/entities"
	"storefront/internal/logging"
	"storefront/internal/metrics"
	"storefront/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrGiftCardNotFound          = errors.New("gift card not found")
	ErrInvalidGiftCardAmount     = errors.New("invalid gift card amount")
	ErrGiftCardInvalidOrRedeemed = errors.New("invalid or already redeemed gift card code")
	ErrGiftCardExpired           = errors.New("gift card expired")
	ErrGiftCardCodeUnavailable   = errors.New("could not generate a unique gift card code")
	ErrGiftCardNotRedeemed       = errors.New("gift card is not redeemed")
)

// Shopper-facing messages.
const (
	MsgGiftCardInvalidOrRedeemed = "Invalid or already redeemed gift card code."
	MsgGiftCardExpired           = "This gift card has expired."
)

const (
	giftCardCodeAlphabet   = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	giftCardCodeLength     = 16
	giftCardCodeGroup      = 4
	giftCardCodeMaxAttempt = 8
	purchasedGiftCardIDPfx = "pgc-"
)

// IGiftCardUseCase exposes the gift card catalog and the purchased card
// ledger.
type IGiftCardUseCase interface {
	GetGiftCards() []entities.GiftCardTemplate
	GetGiftCardsByCategory(category entities.GiftCardCategory) []entities.GiftCardTemplate
	GetGiftCardByID(id string) (entities.GiftCardTemplate, error)
	PurchaseGiftCard(ctx context.Context, form entities.GiftCardPurchaseForm) (entities.PurchasedGiftCard, error)
	RedeemGiftCard(ctx context.Context, code string) (entities.RedeemResult, error)
	GetMyGiftCards(ctx context.Context) ([]entities.PurchasedGiftCard, error)
	Subscribe(fn func([]entities.PurchasedGiftCard)) (unsubscribe func())
}

// GiftCardRedeemer is the slice of the ledger the checkout depends on.
type GiftCardRedeemer interface {
	RedeemGiftCard(ctx context.Context, code string) (entities.RedeemResult, error)
	RevertRedemption(ctx context.Context, code string) error
}

type GiftCardConfig struct {
	PurchaseDelay time.Duration
	RedeemDelay   time.Duration
}

type GiftCardUseCase struct {
	mu      sync.Mutex
	repo    interfaces.IGiftCardLedgerRepository
	clock   interfaces.IClock
	delayer interfaces.IDelayer
	cfg     GiftCardConfig
	newCode func() (string, error)
	subs    subscribers[[]entities.PurchasedGiftCard]
	log     *slog.Logger
}

var _ IGiftCardUseCase = (*GiftCardUseCase)(nil)
var _ GiftCardRedeemer = (*GiftCardUseCase)(nil)

func NewGiftCardUseCase(repo interfaces.IGiftCardLedgerRepository, clock interfaces.IClock, delayer interfaces.IDelayer, cfg GiftCardConfig) *GiftCardUseCase {
	return &GiftCardUseCase{
		repo:    repo,
		clock:   clock,
		delayer: delayer,
		cfg:     cfg,
		newCode: generateGiftCardCode,
		log:     logging.New("giftcards"),
	}
}

func (u *GiftCardUseCase) GetGiftCards() []entities.GiftCardTemplate {
	out := make([]entities.GiftCardTemplate, 0, len(giftCardCatalog))
	for _, t := range giftCardCatalog {
		out = append(out, cloneTemplate(t))
	}
	return out
}

func (u *GiftCardUseCase) GetGiftCardsByCategory(category entities.GiftCardCategory) []entities.GiftCardTemplate {
	out := []entities.GiftCardTemplate{}
	for _, t := range giftCardCatalog {
		if t.Category == category {
			out = append(out, cloneTemplate(t))
		}
	}
	return out
}

func (u *GiftCardUseCase) GetGiftCardByID(id string) (entities.GiftCardTemplate, error) {
	id = strings.TrimSpace(id)
	for _, t := range giftCardCatalog {
		if t.ID == id {
			return cloneTemplate(t), nil
		}
	}
	return entities.GiftCardTemplate{}, ErrGiftCardNotFound
}

func (u *GiftCardUseCase) PurchaseGiftCard(ctx context.Context, form entities.GiftCardPurchaseForm) (entities.PurchasedGiftCard, error) {
	template, err := u.GetGiftCardByID(form.GiftCardID)
	if err != nil {
		return entities.PurchasedGiftCard{}, err
	}
	if form.Amount <= 0 || !template.AcceptsAmount(form.Amount) {
		return entities.PurchasedGiftCard{}, ErrInvalidGiftCardAmount
	}

	u.log.Info("[giftcard][usecase] purchase start", "gift_card_id", template.ID, "amount", form.Amount)
	if err := u.delayer.Wait(ctx, u.cfg.PurchaseDelay); err != nil {
		return entities.PurchasedGiftCard{}, err
	}

	u.mu.Lock()
	ledger, err := u.repo.Load(ctx)
	if err != nil {
		u.mu.Unlock()
		return entities.PurchasedGiftCard{}, err
	}

	code, err := u.uniqueCode(ledger)
	if err != nil {
		u.mu.Unlock()
		u.log.Error("[giftcard][usecase] code generation failed", "error", err.Error())
		return entities.PurchasedGiftCard{}, err
	}

	now := u.clock.Now()
	card := entities.PurchasedGiftCard{
		ID:             purchasedGiftCardIDPfx + uuid.NewString(),
		GiftCard:       template,
		Amount:         form.Amount,
		Code:           code,
		RecipientEmail: form.RecipientEmail,
		RecipientName:  form.RecipientName,
		SenderName:     form.SenderName,
		Message:        form.Message,
		PurchaseDate:   now,
		ExpiryDate:     now.AddDate(1, 0, 0),
		IsRedeemed:     false,
	}
	ledger = append(ledger, card)
	if err := u.repo.Save(ctx, ledger); err != nil {
		u.mu.Unlock()
		return entities.PurchasedGiftCard{}, err
	}
	u.mu.Unlock()

	metrics.GiftCardsPurchased.Inc()
	u.log.Info("[giftcard][usecase] purchase success", "purchased_id", card.ID, "amount", card.Amount)
	u.subs.notify(slices.Clone(ledger))
	return card, nil
}

// RedeemGiftCard marks the first unredeemed card with exactly this code as
// redeemed. Every outcome is reported after the redeem delay.
func (u *GiftCardUseCase) RedeemGiftCard(ctx context.Context, code string) (entities.RedeemResult, error) {
	if err := u.delayer.Wait(ctx, u.cfg.RedeemDelay); err != nil {
		return entities.RedeemResult{}, err
	}

	u.mu.Lock()
	ledger, err := u.repo.Load(ctx)
	if err != nil {
		u.mu.Unlock()
		return entities.RedeemResult{}, err
	}

	idx := slices.IndexFunc(ledger, func(c entities.PurchasedGiftCard) bool {
		return c.Code == code && !c.IsRedeemed
	})
	if idx == -1 {
		u.mu.Unlock()
		metrics.GiftCardRedemptions.WithLabelValues("invalid").Inc()
		return entities.RedeemResult{Success: false, Message: MsgGiftCardInvalidOrRedeemed}, ErrGiftCardInvalidOrRedeemed
	}

	now := u.clock.Now()
	if ledger[idx].IsExpiredAt(now) {
		u.mu.Unlock()
		metrics.GiftCardRedemptions.WithLabelValues("expired").Inc()
		return entities.RedeemResult{Success: false, Message: MsgGiftCardExpired}, ErrGiftCardExpired
	}

	ledger[idx].IsRedeemed = true
	ledger[idx].RedeemedDate = &now
	if err := u.repo.Save(ctx, ledger); err != nil {
		u.mu.Unlock()
		return entities.RedeemResult{}, err
	}
	amount := ledger[idx].Amount
	u.mu.Unlock()

	metrics.GiftCardRedemptions.WithLabelValues(metrics.OutcomeSuccess).Inc()
	u.log.Info("[giftcard][usecase] redeem success", "purchased_id", ledger[idx].ID, "amount", amount)
	u.subs.notify(slices.Clone(ledger))
	return entities.RedeemResult{
		Success: true,
		Message: fmt.Sprintf("Successfully redeemed %.2f D gift card!", amount),
		Amount:  amount,
	}, nil
}

// RevertRedemption makes a card redeemed by RedeemGiftCard redeemable again.
// Only used when the redemption could not be applied to an order.
func (u *GiftCardUseCase) RevertRedemption(ctx context.Context, code string) error {
	u.mu.Lock()
	ledger, err := u.repo.Load(ctx)
	if err != nil {
		u.mu.Unlock()
		return err
	}

	idx := slices.IndexFunc(ledger, func(c entities.PurchasedGiftCard) bool {
		return c.Code == code && c.IsRedeemed
	})
	if idx == -1 {
		u.mu.Unlock()
		return ErrGiftCardNotRedeemed
	}

	ledger[idx].IsRedeemed = false
	ledger[idx].RedeemedDate = nil
	if err := u.repo.Save(ctx, ledger); err != nil {
		u.mu.Unlock()
		return err
	}
	u.mu.Unlock()

	metrics.GiftCardRedemptions.WithLabelValues("reverted").Inc()
	u.log.Warn("[giftcard][usecase] redemption reverted", "purchased_id", ledger[idx].ID)
	u.subs.notify(slices.Clone(ledger))
	return nil
}

func (u *GiftCardUseCase) GetMyGiftCards(ctx context.Context) ([]entities.PurchasedGiftCard, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.repo.Load(ctx)
}

func (u *GiftCardUseCase) Subscribe(fn func([]entities.PurchasedGiftCard)) func() {
	return u.subs.add(fn)
}

func (u *GiftCardUseCase) uniqueCode(ledger []entities.PurchasedGiftCard) (string, error) {
	for range giftCardCodeMaxAttempt {
		code, err := u.newCode()
		if err != nil {
			return "", err
		}
		taken := slices.ContainsFunc(ledger, func(c entities.PurchasedGiftCard) bool { return c.Code == code })
		if !taken {
			return code, nil
		}
	}
	return "", ErrGiftCardCodeUnavailable
}

// generateGiftCardCode draws 16 symbols from a 32-symbol alphabet and groups
// them as XXXX-XXXX-XXXX-XXXX.
func generateGiftCardCode() (string, error) {
	buf := make([]byte, giftCardCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.Grow(giftCardCodeLength + giftCardCodeLength/giftCardCodeGroup - 1)
	for i, b := range buf {
		if i > 0 && i%giftCardCodeGroup == 0 {
			sb.WriteByte('-')
		}
		sb.WriteByte(giftCardCodeAlphabet[int(b)%len(giftCardCodeAlphabet)])
	}
	return sb.String(), nil
}

func cloneTemplate(t entities.GiftCardTemplate) entities.GiftCardTemplate {
	out := t
	out.AvailableAmounts = slices.Clone(t.AvailableAmounts)
	if t.CustomAmountRange != nil {
		r := *t.CustomAmountRange
		out.CustomAmountRange = &r
	}
	return out
}
