package domain

import (
	"github.com/shopspring/decimal"
)

// TERCategory is one of the three effective-rate categories of PMK-168/2023.
// Every PTKP status maps to exactly one category; unknown statuses fail
// closed to TER C, the highest-rate category at a given income.
type TERCategory string

const (
	TERCategoryA TERCategory = "TER A"
	TERCategoryB TERCategory = "TER B"
	TERCategoryC TERCategory = "TER C"
)

// TERBracket is one monthly effective-rate band. Brackets are half-open
// [IncomeFrom, IncomeTo); the last bracket of a category has
// IsHighestBracket set and matches any income at or above IncomeFrom.
type TERBracket struct {
	IncomeFrom       decimal.Decimal `yaml:"income_from" json:"income_from"`
	IncomeTo         decimal.Decimal `yaml:"income_to" json:"income_to"`
	Rate             decimal.Decimal `yaml:"rate" json:"rate"`
	IsHighestBracket bool            `yaml:"is_highest_bracket" json:"is_highest_bracket"`
}

// Contains reports whether the bracket matches the given monthly income.
func (b *TERBracket) Contains(income decimal.Decimal) bool {
	if income.LessThan(b.IncomeFrom) {
		return false
	}
	return b.IsHighestBracket || b.IncomeTo.IsZero() || income.LessThan(b.IncomeTo)
}

// ProgressiveBracket is one annual progressive slab. A zero UpperBound
// marks the unbounded top slab.
type ProgressiveBracket struct {
	UpperBound decimal.Decimal `yaml:"upper_bound" json:"upper_bound"`
	Rate       decimal.Decimal `yaml:"rate" json:"rate"`
}

// Unbounded reports whether the slab has no upper edge.
func (b *ProgressiveBracket) Unbounded() bool {
	return b.UpperBound.IsZero()
}

// DefaultPTKP returns the statutory annual PTKP amounts in rupiah.
func DefaultPTKP() map[TaxStatus]decimal.Decimal {
	return map[TaxStatus]decimal.Decimal{
		TaxStatusTK0: decimal.NewFromInt(54_000_000),
		TaxStatusTK1: decimal.NewFromInt(58_500_000),
		TaxStatusTK2: decimal.NewFromInt(63_000_000),
		TaxStatusTK3: decimal.NewFromInt(67_500_000),
		TaxStatusK0:  decimal.NewFromInt(58_500_000),
		TaxStatusK1:  decimal.NewFromInt(63_000_000),
		TaxStatusK2:  decimal.NewFromInt(67_500_000),
		TaxStatusK3:  decimal.NewFromInt(72_000_000),
		TaxStatusHB0: decimal.NewFromInt(112_500_000),
		TaxStatusHB1: decimal.NewFromInt(117_000_000),
		TaxStatusHB2: decimal.NewFromInt(121_500_000),
		TaxStatusHB3: decimal.NewFromInt(126_000_000),
	}
}

// DefaultPTKPToTER returns the PMK-168/2023 status-to-category mapping.
func DefaultPTKPToTER() map[TaxStatus]TERCategory {
	return map[TaxStatus]TERCategory{
		TaxStatusTK0: TERCategoryA,
		TaxStatusTK1: TERCategoryA,
		TaxStatusK0:  TERCategoryA,
		TaxStatusTK2: TERCategoryB,
		TaxStatusTK3: TERCategoryB,
		TaxStatusK1:  TERCategoryB,
		TaxStatusK2:  TERCategoryB,
		TaxStatusK3:  TERCategoryC,
		TaxStatusHB0: TERCategoryC,
		TaxStatusHB1: TERCategoryC,
		TaxStatusHB2: TERCategoryC,
		TaxStatusHB3: TERCategoryC,
	}
}

// DefaultTaxSlabs returns the five progressive slabs of UU HPP art. 17
// (5/15/25/30/35%), the fallback when no slab configuration is present.
func DefaultTaxSlabs() []ProgressiveBracket {
	return []ProgressiveBracket{
		{UpperBound: decimal.NewFromInt(60_000_000), Rate: decimal.NewFromInt(5)},
		{UpperBound: decimal.NewFromInt(250_000_000), Rate: decimal.NewFromInt(15)},
		{UpperBound: decimal.NewFromInt(500_000_000), Rate: decimal.NewFromInt(25)},
		{UpperBound: decimal.NewFromInt(5_000_000_000), Rate: decimal.NewFromInt(30)},
		{UpperBound: decimal.Zero, Rate: decimal.NewFromInt(35)},
	}
}

func ter(from, to int64, rate float64) TERBracket {
	return TERBracket{
		IncomeFrom: decimal.NewFromInt(from),
		IncomeTo:   decimal.NewFromInt(to),
		Rate:       decimal.NewFromFloat(rate),
	}
}

func terTop(from int64, rate float64) TERBracket {
	return TERBracket{
		IncomeFrom:       decimal.NewFromInt(from),
		Rate:             decimal.NewFromFloat(rate),
		IsHighestBracket: true,
	}
}

// DefaultTERBrackets returns the full PMK-168/2023 monthly effective-rate
// tables for categories A, B and C.
func DefaultTERBrackets() map[TERCategory][]TERBracket {
	return map[TERCategory][]TERBracket{
		TERCategoryA: {
			ter(0, 5_400_000, 0),
			ter(5_400_000, 5_650_000, 0.25),
			ter(5_650_000, 5_950_000, 0.5),
			ter(5_950_000, 6_300_000, 0.75),
			ter(6_300_000, 6_750_000, 1),
			ter(6_750_000, 7_500_000, 1.25),
			ter(7_500_000, 8_550_000, 1.5),
			ter(8_550_000, 9_650_000, 1.75),
			ter(9_650_000, 10_050_000, 2),
			ter(10_050_000, 10_350_000, 2.25),
			ter(10_350_000, 10_700_000, 2.5),
			ter(10_700_000, 11_050_000, 3),
			ter(11_050_000, 11_600_000, 3.5),
			ter(11_600_000, 12_500_000, 4),
			ter(12_500_000, 13_750_000, 5),
			ter(13_750_000, 15_100_000, 6),
			ter(15_100_000, 16_950_000, 7),
			ter(16_950_000, 19_750_000, 8),
			ter(19_750_000, 24_150_000, 9),
			ter(24_150_000, 26_450_000, 10),
			ter(26_450_000, 28_000_000, 11),
			ter(28_000_000, 30_050_000, 12),
			ter(30_050_000, 32_400_000, 13),
			ter(32_400_000, 35_400_000, 14),
			ter(35_400_000, 39_100_000, 15),
			ter(39_100_000, 43_850_000, 16),
			ter(43_850_000, 47_800_000, 17),
			ter(47_800_000, 51_400_000, 18),
			ter(51_400_000, 56_300_000, 19),
			ter(56_300_000, 62_200_000, 20),
			ter(62_200_000, 68_600_000, 21),
			ter(68_600_000, 77_500_000, 22),
			ter(77_500_000, 89_000_000, 23),
			ter(89_000_000, 103_000_000, 24),
			ter(103_000_000, 125_000_000, 25),
			ter(125_000_000, 157_000_000, 26),
			ter(157_000_000, 206_000_000, 27),
			ter(206_000_000, 337_000_000, 28),
			ter(337_000_000, 454_000_000, 29),
			ter(454_000_000, 550_000_000, 30),
			ter(550_000_000, 695_000_000, 31),
			ter(695_000_000, 910_000_000, 32),
			ter(910_000_000, 1_400_000_000, 33),
			terTop(1_400_000_000, 34),
		},
		TERCategoryB: {
			ter(0, 6_200_000, 0),
			ter(6_200_000, 6_500_000, 0.25),
			ter(6_500_000, 6_850_000, 0.5),
			ter(6_850_000, 7_300_000, 0.75),
			ter(7_300_000, 9_200_000, 1),
			ter(9_200_000, 10_750_000, 1.5),
			ter(10_750_000, 11_250_000, 2),
			ter(11_250_000, 11_600_000, 2.5),
			ter(11_600_000, 12_600_000, 3),
			ter(12_600_000, 13_600_000, 4),
			ter(13_600_000, 14_950_000, 5),
			ter(14_950_000, 16_400_000, 6),
			ter(16_400_000, 18_450_000, 7),
			ter(18_450_000, 21_850_000, 8),
			ter(21_850_000, 26_000_000, 9),
			ter(26_000_000, 27_700_000, 10),
			ter(27_700_000, 29_350_000, 11),
			ter(29_350_000, 31_450_000, 12),
			ter(31_450_000, 33_950_000, 13),
			ter(33_950_000, 37_100_000, 14),
			ter(37_100_000, 41_100_000, 15),
			ter(41_100_000, 45_800_000, 16),
			ter(45_800_000, 49_500_000, 17),
			ter(49_500_000, 53_800_000, 18),
			ter(53_800_000, 58_500_000, 19),
			ter(58_500_000, 64_000_000, 20),
			ter(64_000_000, 71_000_000, 21),
			ter(71_000_000, 80_000_000, 22),
			ter(80_000_000, 93_000_000, 23),
			ter(93_000_000, 109_000_000, 24),
			ter(109_000_000, 129_000_000, 25),
			ter(129_000_000, 163_000_000, 26),
			ter(163_000_000, 211_000_000, 27),
			ter(211_000_000, 374_000_000, 28),
			ter(374_000_000, 459_000_000, 29),
			ter(459_000_000, 555_000_000, 30),
			ter(555_000_000, 704_000_000, 31),
			ter(704_000_000, 957_000_000, 32),
			ter(957_000_000, 1_405_000_000, 33),
			terTop(1_405_000_000, 34),
		},
		TERCategoryC: {
			ter(0, 6_600_000, 0),
			ter(6_600_000, 6_950_000, 0.25),
			ter(6_950_000, 7_350_000, 0.5),
			ter(7_350_000, 7_800_000, 0.75),
			ter(7_800_000, 8_850_000, 1),
			ter(8_850_000, 9_800_000, 1.25),
			ter(9_800_000, 10_950_000, 1.5),
			ter(10_950_000, 11_200_000, 1.75),
			ter(11_200_000, 12_050_000, 2),
			ter(12_050_000, 12_950_000, 3),
			ter(12_950_000, 14_150_000, 4),
			ter(14_150_000, 15_550_000, 5),
			ter(15_550_000, 17_050_000, 6),
			ter(17_050_000, 19_500_000, 7),
			ter(19_500_000, 22_700_000, 8),
			ter(22_700_000, 26_600_000, 9),
			ter(26_600_000, 28_100_000, 10),
			ter(28_100_000, 30_100_000, 11),
			ter(30_100_000, 32_600_000, 12),
			ter(32_600_000, 35_400_000, 13),
			ter(35_400_000, 38_900_000, 14),
			ter(38_900_000, 43_000_000, 15),
			ter(43_000_000, 47_400_000, 16),
			ter(47_400_000, 51_200_000, 17),
			ter(51_200_000, 55_800_000, 18),
			ter(55_800_000, 60_400_000, 19),
			ter(60_400_000, 66_700_000, 20),
			ter(66_700_000, 74_500_000, 21),
			ter(74_500_000, 83_200_000, 22),
			ter(83_200_000, 95_600_000, 23),
			ter(95_600_000, 110_000_000, 24),
			ter(110_000_000, 134_000_000, 25),
			ter(134_000_000, 169_000_000, 26),
			ter(169_000_000, 221_000_000, 27),
			ter(221_000_000, 390_000_000, 28),
			ter(390_000_000, 463_000_000, 29),
			ter(463_000_000, 561_000_000, 30),
			ter(561_000_000, 709_000_000, 31),
			ter(709_000_000, 965_000_000, 32),
			ter(965_000_000, 1_419_000_000, 33),
			terTop(1_419_000_000, 34),
		},
	}
}

// Biaya jabatan statutory defaults: 5% of bruto, capped annually at
// Rp 6,000,000. The monthly cap is the annual cap divided by twelve.
var (
	DefaultBiayaJabatanRate      = decimal.NewFromInt(5)
	DefaultBiayaJabatanCapAnnual = decimal.NewFromInt(6_000_000)
)
