// Package status maps device state to status glyphs.
package status

import "github.com/five82/spriteclock/internal/asset"

// Status glyph asset IDs.
const (
	IconPhoneOK      asset.ID = "phone_ok"
	IconPhoneX       asset.ID = "phone_x"
	IconBattOK       asset.ID = "batt_ok"
	IconBattCharging asset.ID = "batt_charging"
	IconBattFull     asset.ID = "batt_full"
	IconBattMed      asset.ID = "batt_med"
	IconBattLow      asset.ID = "batt_low"
	IconBattCritical asset.ID = "batt_critical"
)

// Battery is a battery sample.
type Battery struct {
	ChargePercent int
	Plugged       bool
	Charging      bool
}

// Clamped returns b with ChargePercent limited to [0, 100].
func (b Battery) Clamped() Battery {
	b.ChargePercent = max(0, min(100, b.ChargePercent))
	return b
}

// ConnectivityIcon returns the glyph for the phone link.
func ConnectivityIcon(connected bool) asset.ID {
	if connected {
		return IconPhoneOK
	}
	return IconPhoneX
}

type batteryRule struct {
	name  string
	match func(Battery) bool
	icon  asset.ID
}

// batteryRules is evaluated in order and the first match wins. The charge
// thresholds overlap, so reordering them changes the result. The last rule
// matches everything.
var batteryRules = []batteryRule{
	{"plugged_full", func(b Battery) bool { return b.Plugged && !b.Charging }, IconBattOK},
	{"plugged_charging", func(b Battery) bool { return b.Plugged && b.Charging }, IconBattCharging},
	{"above_70", func(b Battery) bool { return !b.Plugged && b.ChargePercent > 70 }, IconBattFull},
	{"above_40", func(b Battery) bool { return !b.Plugged && b.ChargePercent > 40 }, IconBattMed},
	{"above_10", func(b Battery) bool { return !b.Plugged && b.ChargePercent > 10 }, IconBattLow},
	{"critical", func(Battery) bool { return true }, IconBattCritical},
}

// BatteryIcon returns the glyph for a battery sample.
func BatteryIcon(b Battery) asset.ID {
	icon, _ := resolveBattery(b)
	return icon
}

func resolveBattery(b Battery) (asset.ID, string) {
	b = b.Clamped()
	for _, rule := range batteryRules {
		if rule.match(b) {
			return rule.icon, rule.name
		}
	}
	// Unreachable: the last rule always matches.
	return IconBattCritical, "critical"
}
