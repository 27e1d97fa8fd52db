// Package models holds the data model shared by the pipeline stages: the
// normalized Borderou record, the accounting import row, and the detected
// column layout with its validation verdicts.
package models

import (
	"github.com/shopspring/decimal"
)

// BorderouRecord is one normalized row of a Borderou export: a single
// terminal transaction or daily Z-report line. Numeric cells that failed
// coercion hold zero; sequence and document numbers that failed coercion
// are nil so the accounting stage can drop them.
//
// The CSV tags define the 19-column intermediate schema exchanged between
// the clean and transform stages.
type BorderouRecord struct {
	Sequence               *int64 `csv:"Nr_Crt"`
	Label                  string `csv:"Denumire"`
	DocNumber              *int64 `csv:"Nr_Doc_Z"`
	Date                   Date   `csv:"Data"`
	Explanation            string `csv:"Explicatii"`
	Total                  Amount `csv:"Total_Valoare"`
	ExemptWithDeduction    Amount `csv:"Scutit_Cu_Drept_Reducere"`
	ExemptWithoutDeduction Amount `csv:"Scutit_Fara_Drept_Reducere"`
	Base21                 Amount `csv:"Taxabile_21_Baza_Impozitare"`
	VAT21                  Amount `csv:"Taxabile_21_Val_TVA"`
	Base11                 Amount `csv:"Taxabile_11_Baza_Impozitare"`
	VAT11                  Amount `csv:"Taxabile_11_Val_TVA"`
	UnusedBase1            Amount `csv:"Nefolosit_1_Baza_Impozitare"`
	UnusedVAT1             Amount `csv:"Nefolosit_1_Val_TVA"`
	UnusedBase2            Amount `csv:"Nefolosit_2_Baza_Impozitare"`
	UnusedVAT2             Amount `csv:"Nefolosit_2_Val_TVA"`
	ExemptBase             Amount `csv:"Netaxabil_Baza_Impozitare"`
	ExemptVAT              Amount `csv:"Netaxabil_Val_TVA"`
	FinalRate              Amount `csv:"Final_Rate"`
}

// NetOfExempt is the record total minus the tax-exempt base. Both VAT-rate
// rows of the accounting output carry this figure in their document total
// and cash fields.
func (r BorderouRecord) NetOfExempt() decimal.Decimal {
	return r.Total.Sub(r.ExemptBase.Decimal)
}

// HasDocument reports whether the record carries the fields the accounting
// stage requires: a parsed document number and a parsed date.
func (r BorderouRecord) HasDocument() bool {
	return r.DocNumber != nil && !r.Date.IsZero()
}
