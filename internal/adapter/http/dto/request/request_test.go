package request

import (
	"testing"

	"storefront/internal/domain/entities"

	"github.com/gin-gonic/gin/binding"
)

func validShipping() ShippingInfoRequest {
	return ShippingInfoRequest{
		FullName: "Ana Lima",
		Email:    "ana@example.com",
		Phone:    "+1 (555) 123-4567",
		Address:  "1 Main Street",
		City:     "Springfield",
		State:    "IL",
		ZipCode:  "62701",
		Country:  "United States",
	}
}

func validate(t *testing.T, v any) error {
	t.Helper()
	if err := RegisterValidators(); err != nil {
		t.Fatalf("register validators: %v", err)
	}
	return binding.Validator.ValidateStruct(v)
}

func TestShippingInfoRequest_Validation(t *testing.T) {
	if err := validate(t, validShipping()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	zipPlus4 := validShipping()
	zipPlus4.ZipCode = "62701-1234"
	if err := validate(t, zipPlus4); err != nil {
		t.Fatalf("zip+4 should be valid: %v", err)
	}

	cases := map[string]func(r *ShippingInfoRequest){
		"short name":       func(r *ShippingInfoRequest) { r.FullName = "A" },
		"bad email":        func(r *ShippingInfoRequest) { r.Email = "nope" },
		"letters in phone": func(r *ShippingInfoRequest) { r.Phone = "555-CALL" },
		"short address":    func(r *ShippingInfoRequest) { r.Address = "1 Ma" },
		"missing city":     func(r *ShippingInfoRequest) { r.City = "" },
		"missing state":    func(r *ShippingInfoRequest) { r.State = "" },
		"missing country":  func(r *ShippingInfoRequest) { r.Country = "" },
		"short zip":        func(r *ShippingInfoRequest) { r.ZipCode = "1234" },
		"bad zip suffix":   func(r *ShippingInfoRequest) { r.ZipCode = "12345-12" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			r := validShipping()
			mutate(&r)
			if err := validate(t, r); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestShippingInfoRequest_ToEntity(t *testing.T) {
	r := validShipping()
	r.City = "  Springfield "
	if got := r.ToEntity(); got.City != "Springfield" || got.ZipCode != "62701" {
		t.Fatalf("unexpected entity %+v", got)
	}
}

func TestGiftCardCodeRequest_NormalizedCode(t *testing.T) {
	r := GiftCardCodeRequest{Code: "  abcd-efgh-jkmn-pqrs "}
	if got := r.NormalizedCode(); got != "ABCD-EFGH-JKMN-PQRS" {
		t.Fatalf("unexpected code %q", got)
	}
}

func TestGiftCardPurchaseRequest(t *testing.T) {
	email := GiftCardPurchaseRequest{
		GiftCardID:     "gc-general-1",
		Amount:         50,
		DeliveryMethod: "email",
		RecipientEmail: "friend@example.com",
		RecipientName:  "Friend",
		SenderName:     "Me",
	}
	if err := validate(t, email); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	noRecipient := email
	noRecipient.RecipientEmail = ""
	if err := validate(t, noRecipient); err == nil {
		t.Fatalf("email delivery requires a recipient email")
	}

	printed := email
	printed.DeliveryMethod = "print"
	printed.RecipientEmail = ""
	printed.RecipientName = ""
	if err := validate(t, printed); err != nil {
		t.Fatalf("print delivery needs no recipient: %v", err)
	}

	zero := email
	zero.Amount = 0
	if err := validate(t, zero); err == nil {
		t.Fatalf("expected amount error")
	}

	noSender := email
	noSender.SenderName = ""
	if err := validate(t, noSender); err == nil {
		t.Fatalf("expected sender error")
	}

	keepsEmail := email
	keepsEmail.DeliveryMethod = "print"
	if form := keepsEmail.ToEntity(); form.RecipientEmail != "" || form.DeliveryMethod != entities.DeliveryMethodPrint {
		t.Fatalf("printed cards carry no recipient email, got %+v", form)
	}
}

func TestSignUpRequest_Validation(t *testing.T) {
	ok := SignUpRequest{Name: "Ana", Email: "ana@example.com", Password: "Passw0rd", ConfirmPassword: "Passw0rd", AgreeToTerms: true}
	if err := validate(t, ok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for name, pw := range map[string]string{
		"too short": "Pa5s",
		"no upper":  "passw0rd",
		"no lower":  "PASSW0RD",
		"no digit":  "Password",
	} {
		t.Run(name, func(t *testing.T) {
			r := ok
			r.Password, r.ConfirmPassword = pw, pw
			if err := validate(t, r); err == nil {
				t.Fatalf("expected weak password rejected")
			}
		})
	}

	mismatch := ok
	mismatch.ConfirmPassword = "Passw0rd!"
	if err := validate(t, mismatch); err == nil {
		t.Fatalf("expected mismatch error")
	}

	noTerms := ok
	noTerms.AgreeToTerms = false
	if err := validate(t, noTerms); err == nil {
		t.Fatalf("expected terms error")
	}
}

func TestSignInRequest_Validation(t *testing.T) {
	if err := validate(t, SignInRequest{Email: "ana@example.com", Password: "123456"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := validate(t, SignInRequest{Email: "ana@example.com", Password: "12345"}); err == nil {
		t.Fatalf("expected short password rejected")
	}

	creds := SignInRequest{Email: " ana@example.com ", Password: " pass word ", RememberMe: true}.ToEntity()
	if creds.Email != "ana@example.com" || creds.Password != " pass word " || !creds.RememberMe {
		t.Fatalf("unexpected credentials %+v", creds)
	}
}

func TestAddToCartRequest(t *testing.T) {
	if err := validate(t, AddToCartRequest{ID: "1", Title: "Mug", Price: 0}); err != nil {
		t.Fatalf("free products are allowed: %v", err)
	}
	if err := validate(t, AddToCartRequest{ID: "1", Title: "Mug", Price: -1}); err == nil {
		t.Fatalf("expected negative price rejected")
	}
	if p := (AddToCartRequest{ID: " 1 ", Title: "Mug", Price: 3}).ToEntity(); p.ID != "1" {
		t.Fatalf("unexpected product %+v", p)
	}
}
