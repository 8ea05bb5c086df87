package models

import "time"

// Bank is a row of the banks table. JSONData holds the encoded payload.
type Bank struct {
	BIC        string    `db:"bic"`
	PZN        string    `db:"pzn"`
	Rgn        string    `db:"rgn"`
	Ind        string    `db:"ind"`
	Tnp        string    `db:"tnp"`
	Nnp        string    `db:"nnp"`
	Adr        string    `db:"adr"`
	NameP      string    `db:"namep"`
	NewNum     string    `db:"newnum"`
	RegN       string    `db:"regn"`
	KSNP       string    `db:"ksnp"`
	DateIn     string    `db:"datein"`
	CBRFDate   string    `db:"cbrfdate"`
	CBRFFile   string    `db:"cbrffile"`
	CRC7       string    `db:"crc7"`
	ImportDate time.Time `db:"import_date"`
	JSONData   []byte    `db:"json_data"`
}
