package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Account and code constants required by the downstream accounting import.
// These are business data, not tunables: changing them breaks the import.
const (
	InvoiceTypeSAFT = 380  // Cod tip factura SAF-T
	BankAccount     = 5125 // Cont banca
	CashAccount     = 5311 // Cont casa
	VoucherAccount  = 5328 // Cont tichete
	VATAccount      = 4427 // Cont TVA

	VATCodeSAFT21 = 310344 // Cod TVA SAF-T for the 21% rate
	VATCodeSAFT11 = 310351 // Cod TVA SAF-T for the 11% rate

	VATOptionTaxable = "Taxabile"
)

// ImportRow is one line of the accounting import file. The CSV tags define
// the exact header names and order the downstream system expects; most of
// the partner/address block is intentionally blank for fiscal receipts.
type ImportRow struct {
	Series          string          `csv:"Serie document"`
	DocNumber       int64           `csv:"Numar document"`
	Warehouse       int             `csv:"Cod depozit"`
	WarehouseName   string          `csv:"Nume depozit"`
	DocDate         string          `csv:"Data document"`
	DueDate         string          `csv:"Data scadenta"`
	InvoiceTypeSAFT int             `csv:"Cod tip factura SAF-T"`
	PartnerCode     string          `csv:"Cod partener"`
	PartnerName     string          `csv:"Nume partener"`
	FiscalAttribute string          `csv:"Atribut fiscal"`
	FiscalCode      string          `csv:"Cod fiscal"`
	TradeRegistry   string          `csv:"Nr.Reg.Com."`
	Residence       string          `csv:"Rezidenta"`
	Country         string          `csv:"Tara"`
	County          string          `csv:"Judet"`
	City            string          `csv:"Localitate"`
	Street          string          `csv:"Strada"`
	StreetNumber    string          `csv:"Numar"`
	Building        string          `csv:"Bloc"`
	Staircase       string          `csv:"Scara"`
	Floor           string          `csv:"Etaj"`
	Apartment       string          `csv:"Apartament"`
	PostalCode      string          `csv:"Cod postal"`
	AgentCode       string          `csv:"Cod agent"`
	NetTotal        decimal.Decimal `csv:"Valoare neta totala"`
	VATValue        decimal.Decimal `csv:"Valoare TVA"`
	DocTotal        decimal.Decimal `csv:"Total document"`
	ReceiptCount    string          `csv:"Numar bonuri fiscale"`
	Card            decimal.Decimal `csv:"Card"`
	BankAccount     int             `csv:"Cont banca"`
	Cash            decimal.Decimal `csv:"Numerar"`
	CashAccount     int             `csv:"Cont casa"`
	Vouchers        decimal.Decimal `csv:"Tichete"`
	VoucherAccount  int             `csv:"Cont tichete"`
	VATAccount      int             `csv:"Cont TVA"`
	ArticleCode     string          `csv:"Cod articol"`
	Barcode         string          `csv:"Cod de bare"`
	ArticleName     string          `csv:"Denumire articol"`
	Quantity        int             `csv:"Cantitate"`
	BatchCode       string          `csv:"Cod lot"`
	ExpiryDate      string          `csv:"Data expirare"`
	SerialNumbers   string          `csv:"Nr seriale"`
	MovementSAFT    string          `csv:"Tip miscare SAF-T"`
	ServiceAccount  string          `csv:"Cont serviciu"`
	PriceWithVAT    decimal.Decimal `csv:"Pret cu TVA"`
	TotalExclVAT    decimal.Decimal `csv:"Total fara TVA"`
	TotalVAT        decimal.Decimal `csv:"Total TVA"`
	TotalInclVAT    decimal.Decimal `csv:"Total cu TVA"`
	VATOption       string          `csv:"Optiune TVA"`
	VATRate         int             `csv:"Cota TVA"`
	VATCodeSAFT     int             `csv:"Cod TVA SAF-T"`
	Discount        string          `csv:"Discount"`
	DiscountLine    string          `csv:"DiscountLinie"`
}

// NewImportRow builds an accounting row for one VAT bucket of a record.
// rate is the statutory percentage (21 or 11), base and vat the bucket's
// figures, netOfExempt the record total minus its tax-exempt base. Per
// business rule both rate rows of a record carry netOfExempt in their
// document total and cash fields.
func NewImportRow(series string, docNumber int64, warehouse int, date Date,
	articleLabel string, rate int, base, vat, netOfExempt decimal.Decimal) ImportRow {

	vatCode := VATCodeSAFT21
	if rate == 11 {
		vatCode = VATCodeSAFT11
	}
	dateStr := date.Compact()

	return ImportRow{
		Series:          series,
		DocNumber:       docNumber,
		Warehouse:       warehouse,
		DocDate:         dateStr,
		DueDate:         dateStr,
		InvoiceTypeSAFT: InvoiceTypeSAFT,
		NetTotal:        base,
		VATValue:        vat,
		DocTotal:        netOfExempt,
		Card:            decimal.Zero,
		BankAccount:     BankAccount,
		Cash:            netOfExempt,
		CashAccount:     CashAccount,
		Vouchers:        decimal.Zero,
		VoucherAccount:  VoucherAccount,
		VATAccount:      VATAccount,
		ArticleCode:     fmt.Sprintf("%s %d%%", articleLabel, rate),
		ArticleName:     articleLabel,
		Quantity:        1,
		PriceWithVAT:    base.Add(vat),
		TotalExclVAT:    base,
		TotalVAT:        vat,
		TotalInclVAT:    base.Add(vat),
		VATOption:       VATOptionTaxable,
		VATRate:         rate,
		VATCodeSAFT:     vatCode,
	}
}
