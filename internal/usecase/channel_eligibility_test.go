package usecase

import (
	"testing"

	"github.com/kwamkid/joolz-factory-sub006/internal/domain/entities"
)

func TestEligibleLinkSettings(t *testing.T) {
	t.Run("disabled channel is skipped", func(t *testing.T) {
		settings := eligibleLinkSettings(500, "retail", map[string]entities.ChannelRule{
			"CARD": {Enabled: false},
		})
		if settings["card"] {
			t.Fatalf("disabled channel must not be enabled")
		}
	})

	t.Run("minimum amount excludes channel", func(t *testing.T) {
		settings := eligibleLinkSettings(99.99, "retail", map[string]entities.ChannelRule{
			"CARD": {Enabled: true, MinAmount: 100},
		})
		if settings["card"] {
			t.Fatalf("channel below minimum must not be enabled")
		}
		if anySettingEnabled(settings) {
			t.Fatalf("expected no enabled setting")
		}
	})

	t.Run("amount equal to minimum is eligible", func(t *testing.T) {
		settings := eligibleLinkSettings(100, "retail", map[string]entities.ChannelRule{
			"CARD": {Enabled: true, MinAmount: 100},
		})
		if !settings["card"] {
			t.Fatalf("channel at minimum must be enabled")
		}
	})

	t.Run("customer type restriction", func(t *testing.T) {
		channels := map[string]entities.ChannelRule{
			"CARD": {Enabled: true, CustomerTypes: []string{"wholesale"}},
		}
		if eligibleLinkSettings(500, "retail", channels)["card"] {
			t.Fatalf("retail must not match wholesale-only rule")
		}
		if !eligibleLinkSettings(500, "wholesale", channels)["card"] {
			t.Fatalf("wholesale must match wholesale-only rule")
		}
		if eligibleLinkSettings(500, "", channels)["card"] {
			t.Fatalf("unknown customer type must not match a restricted rule")
		}
	})

	t.Run("ewallet aliasing is a union", func(t *testing.T) {
		settings := eligibleLinkSettings(500, "retail", map[string]entities.ChannelRule{
			"TRUEMONEY": {Enabled: false},
			"LINEPAY":   {Enabled: true},
		})
		if !settings["eWallets"] {
			t.Fatalf("one enabled alias must enable the shared eWallets key")
		}
	})

	t.Run("later disabled alias does not overwrite", func(t *testing.T) {
		settings := eligibleLinkSettings(500, "retail", map[string]entities.ChannelRule{
			"SHOPEEPAY": {Enabled: true},
			"TRUEMONEY": {Enabled: true, MinAmount: 10000},
		})
		if !settings["eWallets"] {
			t.Fatalf("ineligible alias must not clear an already-enabled key")
		}
	})

	t.Run("unknown code ignored", func(t *testing.T) {
		settings := eligibleLinkSettings(500, "retail", map[string]entities.ChannelRule{
			"BARTER": {Enabled: true},
		})
		if anySettingEnabled(settings) {
			t.Fatalf("unknown channel code must not enable anything")
		}
	})

	t.Run("all known keys always present", func(t *testing.T) {
		settings := eligibleLinkSettings(500, "retail", map[string]entities.ChannelRule{
			"CARD": {Enabled: true},
		})
		for _, key := range allSettingKeys {
			if _, ok := settings[key]; !ok {
				t.Fatalf("missing setting key %q", key)
			}
		}
		if !settings["card"] {
			t.Fatalf("card must be enabled")
		}
		for _, key := range []string{"qrPromptPay", "mobileBanking", "eWallets", "installments"} {
			if settings[key] {
				t.Fatalf("%s must stay disabled", key)
			}
		}
	})
}

func TestToMinorUnits(t *testing.T) {
	cases := []struct {
		amount float64
		want   int64
	}{
		{500, 50000},
		{149.995, 15000},
		{149.994, 14999},
		{0.01, 1},
		{0, 0},
	}

	for _, tc := range cases {
		if got := toMinorUnits(tc.amount); got != tc.want {
			t.Fatalf("toMinorUnits(%v): expected %d, got %d", tc.amount, tc.want, got)
		}
	}
}
