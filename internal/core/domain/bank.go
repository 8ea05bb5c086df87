package domain

import (
	"fmt"
	"time"
)

// SourceEncodingWindows1251 is the encoding marker stored with every imported bank.
const SourceEncodingWindows1251 = "Windows-1251"

// Bank is one entry of the CBR BIC directory.
type Bank struct {
	BIC        string      `json:"bic"`
	PZN        string      `json:"pzn"`  // participant type
	Rgn        string      `json:"rgn"`  // region code
	Ind        string      `json:"ind"`  // postal index
	Tnp        string      `json:"tnp"`  // locality type
	Nnp        string      `json:"nnp"`  // locality name
	Adr        string      `json:"adr"`  // address
	NameP      string      `json:"namep"`
	NewNum     string      `json:"newnum"`
	RegN       string      `json:"regn"` // registration number
	KSNP       string      `json:"ksnp"` // primary correspondent account
	DateIn     string      `json:"datein"`
	CBRFDate   string      `json:"cbrfdate"` // directory creation date
	CBRFFile   string      `json:"cbrffile"` // archive member the entry came from
	CRC7       string      `json:"crc7"`     // participant UID
	ImportDate time.Time   `json:"importDate"`
	Payload    BankPayload `json:"payload"`
}

func (b Bank) String() string {
	return fmt.Sprintf("%s - %s", b.BIC, b.NameP)
}

// BankPayload keeps the directory data that has no dedicated column.
type BankPayload struct {
	EDAuthor        string              `json:"ed_author"`
	Accounts        []map[string]string `json:"accounts"`
	ParticipantInfo map[string]string   `json:"participant_info"`
	SourceEncoding  string              `json:"source_encoding"`
}

// BankFeed is the parsed bank directory.
type BankFeed struct {
	CreationDate string
	EDAuthor     string
	FileName     string
	Banks        []Bank
}
