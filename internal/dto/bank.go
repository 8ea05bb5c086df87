package dto

import (
	"time"

	"github.com/SscSPs/cbr_loader/internal/core/domain"
)

// ListBanksParams are the query parameters of the bank listing.
type ListBanksParams struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"pageSize" binding:"omitempty,min=1,max=500"`
}

// BankResponse defines the data returned for a directory entry.
type BankResponse struct {
	BIC        string             `json:"bic"`
	NameP      string             `json:"namep"`
	PZN        string             `json:"pzn"`
	Rgn        string             `json:"rgn"`
	Ind        string             `json:"ind"`
	Tnp        string             `json:"tnp"`
	Nnp        string             `json:"nnp"`
	Adr        string             `json:"adr"`
	NewNum     string             `json:"newnum"`
	RegN       string             `json:"regn"`
	KSNP       string             `json:"ksnp"`
	DateIn     string             `json:"datein"`
	CBRFDate   string             `json:"cbrfdate"`
	CBRFFile   string             `json:"cbrffile"`
	CRC7       string             `json:"crc7"`
	ImportDate time.Time          `json:"importDate"`
	Payload    domain.BankPayload `json:"payload"`
}

// ListBanksResponse is one page of banks.
type ListBanksResponse struct {
	Banks []BankResponse `json:"banks"`
	Total int            `json:"total"`
}

func ToBankResponse(b domain.Bank) BankResponse {
	return BankResponse{
		BIC:        b.BIC,
		NameP:      b.NameP,
		PZN:        b.PZN,
		Rgn:        b.Rgn,
		Ind:        b.Ind,
		Tnp:        b.Tnp,
		Nnp:        b.Nnp,
		Adr:        b.Adr,
		NewNum:     b.NewNum,
		RegN:       b.RegN,
		KSNP:       b.KSNP,
		DateIn:     b.DateIn,
		CBRFDate:   b.CBRFDate,
		CBRFFile:   b.CBRFFile,
		CRC7:       b.CRC7,
		ImportDate: b.ImportDate,
		Payload:    b.Payload,
	}
}

func ToListBanksResponse(banks []domain.Bank, total int) ListBanksResponse {
	res := make([]BankResponse, len(banks))
	for i, b := range banks {
		res[i] = ToBankResponse(b)
	}
	return ListBanksResponse{Banks: res, Total: total}
}
