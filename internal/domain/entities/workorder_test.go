package entities

import (
	"testing"
)

func TestWorkOrderRecalculate(t *testing.T) {
	t.Run("services products and charges", func(t *testing.T) {
		o := WorkOrder{
			Services: []ServiceLine{
				{Name: "Full wash", Price: 500},
				{Name: "Polish", Price: 300},
			},
			Products: []ProductLine{
				{Name: "Wax", Price: 250, Quantity: 2},
			},
			ServiceCharges: []ServiceCharge{
				{Description: "Pickup", Price: 100},
			},
		}
		o.Recalculate()

		if o.TotalServiceCharge != 900 {
			t.Fatalf("expected service charge 900, got %v", o.TotalServiceCharge)
		}
		if o.TotalProductCost != 500 {
			t.Fatalf("expected product cost 500, got %v", o.TotalProductCost)
		}
		if o.TotalAmount != 1400 {
			t.Fatalf("expected total 1400, got %v", o.TotalAmount)
		}
	})

	t.Run("flat discount", func(t *testing.T) {
		o := WorkOrder{
			Services: []ServiceLine{{Name: "Wash", Price: 500}},
			Discount: Discount{Type: DiscountTypeFlat, Value: 100},
		}
		o.Recalculate()
		if o.TotalAmount != 400 {
			t.Fatalf("expected 400, got %v", o.TotalAmount)
		}
	})

	t.Run("percent discount", func(t *testing.T) {
		o := WorkOrder{
			Services: []ServiceLine{{Name: "Wash", Price: 800}},
			Products: []ProductLine{{Name: "Shampoo", Price: 200, Quantity: 1}},
			Discount: Discount{Type: DiscountTypePercent, Value: 10},
		}
		o.Recalculate()
		if o.TotalAmount != 900 {
			t.Fatalf("expected 900, got %v", o.TotalAmount)
		}
	})

	t.Run("discount larger than subtotal clamps to zero", func(t *testing.T) {
		o := WorkOrder{
			Services: []ServiceLine{{Name: "Wash", Price: 100}},
			Discount: Discount{Type: DiscountTypeFlat, Value: 500},
		}
		o.Recalculate()
		if o.TotalAmount != 0 {
			t.Fatalf("expected clamp to 0, got %v", o.TotalAmount)
		}
	})

	t.Run("empty order", func(t *testing.T) {
		o := WorkOrder{}
		o.Recalculate()
		if o.TotalAmount != 0 || o.TotalServiceCharge != 0 || o.TotalProductCost != 0 {
			t.Fatalf("expected zero totals, got %+v", o)
		}
	})
}

func TestDiscountAmountOn(t *testing.T) {
	cases := []struct {
		name     string
		discount Discount
		subtotal float64
		want     float64
	}{
		{name: "zero", discount: Discount{}, subtotal: 100, want: 0},
		{name: "flat", discount: Discount{Type: DiscountTypeFlat, Value: 25}, subtotal: 100, want: 25},
		{name: "untyped value treated as flat", discount: Discount{Value: 25}, subtotal: 100, want: 25},
		{name: "percent", discount: Discount{Type: DiscountTypePercent, Value: 25}, subtotal: 200, want: 50},
		{name: "negative never increases bill", discount: Discount{Type: DiscountTypeFlat, Value: -50}, subtotal: 100, want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.discount.AmountOn(tc.subtotal); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestParseLegacyDiscount(t *testing.T) {
	t.Run("empty is zero discount", func(t *testing.T) {
		d, ok := ParseLegacyDiscount("   ")
		if !ok || !d.IsZero() {
			t.Fatalf("expected zero discount, got %+v ok=%v", d, ok)
		}
	})

	t.Run("bare number is flat", func(t *testing.T) {
		d, ok := ParseLegacyDiscount("150.50")
		if !ok {
			t.Fatalf("expected ok")
		}
		if d.Type != DiscountTypeFlat || d.Value != 150.50 {
			t.Fatalf("unexpected discount: %+v", d)
		}
	})

	t.Run("percent string rejected", func(t *testing.T) {
		if _, ok := ParseLegacyDiscount("10%"); ok {
			t.Fatalf("expected rejection")
		}
	})

	t.Run("prose rejected", func(t *testing.T) {
		if _, ok := ParseLegacyDiscount("friend of the owner"); ok {
			t.Fatalf("expected rejection")
		}
	})
}

func TestPaymentDetailsSplitMatches(t *testing.T) {
	p := PaymentDetails{Method: PaymentMethodBoth, CashAmount: 600, UPIAmount: 400}
	if !p.SplitMatches(1000) {
		t.Fatalf("expected split to match")
	}
	if p.SplitMatches(1001) {
		t.Fatalf("expected split mismatch")
	}

	// Float arithmetic must not fail a to-the-cent correct split.
	p = PaymentDetails{Method: PaymentMethodBoth, CashAmount: 0.1, UPIAmount: 0.2}
	if !p.SplitMatches(0.3) {
		t.Fatalf("expected 0.1+0.2 to match 0.3")
	}
}

func TestWorkOrderSideEffects(t *testing.T) {
	t.Run("stock and loyalty", func(t *testing.T) {
		o := WorkOrder{
			VehicleID: "veh-1",
			Services: []ServiceLine{
				{ServiceID: "svc-1", IsOffer: true},
				{ServiceID: "svc-2", IsOffer: false},
				{ServiceID: "svc-3", IsOffer: true},
			},
			Products: []ProductLine{
				{ProductID: "prod-1", Quantity: 2},
				{ProductID: "prod-2", Quantity: 0},
			},
		}
		fx := o.SideEffects()

		if len(fx.Stock) != 1 || fx.Stock[0].ProductID != "prod-1" || fx.Stock[0].Quantity != 2 {
			t.Fatalf("unexpected stock adjustments: %+v", fx.Stock)
		}
		if fx.VehicleID != "veh-1" || fx.LoyaltyDelta != 2 {
			t.Fatalf("unexpected loyalty: %+v", fx)
		}
	})

	t.Run("no vehicle means no loyalty", func(t *testing.T) {
		o := WorkOrder{Services: []ServiceLine{{ServiceID: "svc-1", IsOffer: true}}}
		fx := o.SideEffects()
		if fx.VehicleID != "" || fx.LoyaltyDelta != 0 {
			t.Fatalf("expected no loyalty delta, got %+v", fx)
		}
	})

	t.Run("reversed flips signs", func(t *testing.T) {
		fx := OrderSideEffects{
			Stock:        []StockAdjustment{{ProductID: "prod-1", Quantity: 3}},
			VehicleID:    "veh-1",
			LoyaltyDelta: 2,
		}
		rev := fx.Reversed()
		if rev.Stock[0].Quantity != -3 || rev.LoyaltyDelta != -2 || rev.VehicleID != "veh-1" {
			t.Fatalf("unexpected reversal: %+v", rev)
		}
	})

	t.Run("empty", func(t *testing.T) {
		if !(OrderSideEffects{}).Empty() {
			t.Fatalf("expected empty")
		}
		if (OrderSideEffects{LoyaltyDelta: 1}).Empty() {
			t.Fatalf("expected not empty")
		}
	})
}

func TestWorkOrderStatus(t *testing.T) {
	for _, s := range []WorkOrderStatus{WorkOrderStatusPending, WorkOrderStatusInProgress, WorkOrderStatusPaid, WorkOrderStatusCancelled} {
		if !s.Valid() {
			t.Fatalf("expected %s to be valid", s)
		}
	}
	if WorkOrderStatus("done").Valid() {
		t.Fatalf("expected invalid status")
	}
	if WorkOrderStatusPending.Terminal() || WorkOrderStatusInProgress.Terminal() {
		t.Fatalf("pending/in_progress must not be terminal")
	}
	if !WorkOrderStatusPaid.Terminal() || !WorkOrderStatusCancelled.Terminal() {
		t.Fatalf("paid/cancelled must be terminal")
	}
}

func TestFormatSerial(t *testing.T) {
	if got := FormatSerial(1); got != "INV-001" {
		t.Fatalf("expected INV-001, got %s", got)
	}
	if got := FormatSerial(42); got != "INV-042" {
		t.Fatalf("expected INV-042, got %s", got)
	}
	if got := FormatSerial(1205); got != "INV-1205" {
		t.Fatalf("expected INV-1205, got %s", got)
	}
}

func TestVehicleFreeServiceDue(t *testing.T) {
	if (Vehicle{ServiceCount: 9}).FreeServiceDue() {
		t.Fatalf("expected not due at 9")
	}
	if !(Vehicle{ServiceCount: 10}).FreeServiceDue() {
		t.Fatalf("expected due at 10")
	}
	if !(Vehicle{ServiceCount: 25}).FreeServiceDue() {
		t.Fatalf("expected due past the threshold")
	}
}
