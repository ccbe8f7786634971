package usecase

import "github.com/kwamkid/joolz-factory-sub006/internal/domain/entities"

// channelSettingKeys maps internal channel codes to the gateway's link
// setting keys. The mapping is many-to-one: the e-wallet codes all toggle
// the shared "eWallets" setting, and any one eligible alias enables it.
var channelSettingKeys = map[string]string{
	"CARD":           "card",
	"QR":             "qrPromptPay",
	"PROMPTPAY":      "qrPromptPay",
	"MOBILE_BANKING": "mobileBanking",
	"TRUEMONEY":      "eWallets",
	"SHOPEEPAY":      "eWallets",
	"LINEPAY":        "eWallets",
	"INSTALLMENT":    "installments",
}

// allSettingKeys is every link setting the gateway understands. The request
// always carries the full set so disabled channels are explicit.
var allSettingKeys = []string{"card", "qrPromptPay", "mobileBanking", "eWallets", "installments"}

// eligibleLinkSettings computes the gateway link settings for one order.
//
// A channel rule is eligible when it is enabled, the order total meets its
// minimum, and either the rule does not restrict customer types or the
// order's customer type is listed. Unknown channel codes are ignored.
func eligibleLinkSettings(amount float64, customerType string, channels map[string]entities.ChannelRule) map[string]bool {
	settings := make(map[string]bool, len(allSettingKeys))
	for _, key := range allSettingKeys {
		settings[key] = false
	}

	for code, rule := range channels {
		key, known := channelSettingKeys[code]
		if !known {
			continue
		}
		if !rule.Enabled {
			continue
		}
		if amount < rule.MinAmount {
			continue
		}
		if len(rule.CustomerTypes) > 0 && !containsString(rule.CustomerTypes, customerType) {
			continue
		}
		settings[key] = true
	}
	return settings
}

func anySettingEnabled(settings map[string]bool) bool {
	for _, enabled := range settings {
		if enabled {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
