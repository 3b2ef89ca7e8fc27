package reference

import "strings"

// The payment-initiating services attach a colon-delimited reference string to
// every provider payment (MercadoPago external_reference). This package is the
// single place that knows the recognized shapes:
//
//	loanapp:<id>
//	installment:<id>:contract:<id>
//	contract:<id>            (recurring charge; the engine picks the installment)
//	partsorder:<id>
//
// Resolve is pure and total: anything else, including the empty string,
// resolves to KindUnrecognized.

type Kind string

const (
	KindLoanApplication   Kind = "loan_application"
	KindInstallment       Kind = "installment"
	KindRecurringContract Kind = "recurring_contract"
	KindPartsOrder        Kind = "parts_order"
	KindUnrecognized      Kind = "unrecognized"
)

// Resolution is the tagged result of parsing a reference string. Only the id
// fields relevant to Kind are populated.

type Resolution struct {
	Kind              Kind
	LoanApplicationID string
	InstallmentID     string
	ContractID        string
	PartsOrderID      string
}

func Resolve(raw string) Resolution {
	tokens := strings.Split(strings.TrimSpace(raw), ":")

	switch {
	case len(tokens) == 2 && tokens[0] == "loanapp" && tokens[1] != "":
		return Resolution{Kind: KindLoanApplication, LoanApplicationID: tokens[1]}

	case len(tokens) == 4 && tokens[0] == "installment" && tokens[2] == "contract" && tokens[1] != "" && tokens[3] != "":
		return Resolution{Kind: KindInstallment, InstallmentID: tokens[1], ContractID: tokens[3]}

	case len(tokens) == 2 && tokens[0] == "contract" && tokens[1] != "":
		return Resolution{Kind: KindRecurringContract, ContractID: tokens[1]}

	case len(tokens) == 2 && tokens[0] == "partsorder" && tokens[1] != "":
		return Resolution{Kind: KindPartsOrder, PartsOrderID: tokens[1]}
	}

	return Resolution{Kind: KindUnrecognized}
}
