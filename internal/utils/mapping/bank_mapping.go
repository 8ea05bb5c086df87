package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/cbr_loader/internal/core/domain"
	"github.com/SscSPs/cbr_loader/internal/models"
)

// ToModelBank converts a domain Bank to a model Bank, encoding its payload.
func ToModelBank(d domain.Bank) (models.Bank, error) {
	payload := d.Payload
	if payload.Accounts == nil {
		payload.Accounts = []map[string]string{}
	}
	if payload.ParticipantInfo == nil {
		payload.ParticipantInfo = map[string]string{}
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return models.Bank{}, fmt.Errorf("failed to encode payload of bank %s: %w", d.BIC, err)
	}

	return models.Bank{
		BIC:        d.BIC,
		PZN:        d.PZN,
		Rgn:        d.Rgn,
		Ind:        d.Ind,
		Tnp:        d.Tnp,
		Nnp:        d.Nnp,
		Adr:        d.Adr,
		NameP:      d.NameP,
		NewNum:     d.NewNum,
		RegN:       d.RegN,
		KSNP:       d.KSNP,
		DateIn:     d.DateIn,
		CBRFDate:   d.CBRFDate,
		CBRFFile:   d.CBRFFile,
		CRC7:       d.CRC7,
		ImportDate: d.ImportDate,
		JSONData:   data,
	}, nil
}

// ToDomainBank converts a model Bank to a domain Bank, decoding its payload.
func ToDomainBank(m models.Bank) (domain.Bank, error) {
	var payload domain.BankPayload
	if len(m.JSONData) > 0 {
		if err := json.Unmarshal(m.JSONData, &payload); err != nil {
			return domain.Bank{}, fmt.Errorf("failed to decode payload of bank %s: %w", m.BIC, err)
		}
	}

	return domain.Bank{
		BIC:        m.BIC,
		PZN:        m.PZN,
		Rgn:        m.Rgn,
		Ind:        m.Ind,
		Tnp:        m.Tnp,
		Nnp:        m.Nnp,
		Adr:        m.Adr,
		NameP:      m.NameP,
		NewNum:     m.NewNum,
		RegN:       m.RegN,
		KSNP:       m.KSNP,
		DateIn:     m.DateIn,
		CBRFDate:   m.CBRFDate,
		CBRFFile:   m.CBRFFile,
		CRC7:       m.CRC7,
		ImportDate: m.ImportDate,
		Payload:    payload,
	}, nil
}
