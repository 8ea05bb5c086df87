package cbr_test

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/SscSPs/cbr_loader/internal/adapters/cbr"
	"github.com/SscSPs/cbr_loader/internal/apperrors"
	"github.com/SscSPs/cbr_loader/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

const bankDirectory = `<?xml version="1.0" encoding="WINDOWS-1251"?>
<ED807 xmlns="urn:cbr-ru:ed:v2.0" EDNo="1" EDDate="2024-12-01" EDAuthor="4583001999" CreationReason="FCBD" CreationDateTime="2024-12-01T06:30:00Z" InfoTypeCode="FIRR" BusinessDay="2024-12-02">
	<BICDirectoryEntry BIC="044525225">
		<ParticipantInfo NameP="ПАО Сбербанк" RegN="1481" CntrCd="RU" Rgn="45" Ind="117997" Tnp="г" Nnp="Москва" Adr="ул Вавилова, 19" DateIn="20.06.1991" PtType="20" UID="4525225000" ParticipantStatus="PSAC"/>
		<Accounts Account="30101810400000000225" RegulationAccountType="CRSA" CK="59" AccountCBRBIC="044525000" DateIn="2000-01-01" AccountStatus="ACAC"/>
		<Accounts Account="30101810400000000999" RegulationAccountType="CRSA" AccountCBRBIC="044525000" DateIn="2010-01-01" AccountStatus="ACAC"/>
	</BICDirectoryEntry>
	<BICDirectoryEntry BIC="044525000">
		<ParticipantInfo NameP="ГУ Банка России по ЦФО" Rgn="45" PtType="00" UID="4525000000"/>
	</BICDirectoryEntry>
	<BICDirectoryEntry BIC="000000001"/>
</ED807>`

type archiveMember struct {
	name string
	data []byte
}

func buildArchive(t *testing.T, members ...archiveMember) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, m := range members {
		w, err := zw.Create(m.name)
		require.NoError(t, err)
		_, err = w.Write(m.data)
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func encode1251(t *testing.T, s string) []byte {
	t.Helper()
	b, err := charmap.Windows1251.NewEncoder().Bytes([]byte(s))
	require.NoError(t, err)
	return b
}

func TestParseBankFeed(t *testing.T) {
	archive := buildArchive(t, archiveMember{name: "20241201_ED807_full.xml", data: encode1251(t, bankDirectory)})

	feed, err := cbr.ParseBankFeed(archive)
	require.NoError(t, err)

	assert.Equal(t, "2024-12-01", feed.CreationDate)
	assert.Equal(t, "4583001999", feed.EDAuthor)
	assert.Equal(t, "20241201_ED807_full.xml", feed.FileName)
	require.Len(t, feed.Banks, 2, "entry without participant info must be skipped")

	sber := feed.Banks[0]
	assert.Equal(t, "044525225", sber.BIC)
	assert.Equal(t, "044525225", sber.NewNum)
	assert.Equal(t, "ПАО Сбербанк", sber.NameP)
	assert.Equal(t, "20", sber.PZN)
	assert.Equal(t, "45", sber.Rgn)
	assert.Equal(t, "117997", sber.Ind)
	assert.Equal(t, "г", sber.Tnp)
	assert.Equal(t, "Москва", sber.Nnp)
	assert.Equal(t, "ул Вавилова, 19", sber.Adr)
	assert.Equal(t, "1481", sber.RegN)
	assert.Equal(t, "20.06.1991", sber.DateIn)
	assert.Equal(t, "4525225000", sber.CRC7)
	assert.Equal(t, "30101810400000000225", sber.KSNP)
	assert.Equal(t, "2024-12-01", sber.CBRFDate)
	assert.Equal(t, "20241201_ED807_full.xml", sber.CBRFFile)

	assert.Equal(t, "4583001999", sber.Payload.EDAuthor)
	assert.Equal(t, domain.SourceEncodingWindows1251, sber.Payload.SourceEncoding)
	require.Len(t, sber.Payload.Accounts, 2)
	assert.Equal(t, "30101810400000000225", sber.Payload.Accounts[0]["Account"])
	assert.Equal(t, "59", sber.Payload.Accounts[0]["CK"])
	assert.Equal(t, "30101810400000000999", sber.Payload.Accounts[1]["Account"])
	assert.Equal(t, "PSAC", sber.Payload.ParticipantInfo["ParticipantStatus"])
	assert.NotContains(t, sber.Payload.ParticipantInfo, "xmlns")

	cbrf := feed.Banks[1]
	assert.Equal(t, "044525000", cbrf.BIC)
	assert.Equal(t, "", cbrf.KSNP)
	assert.NotNil(t, cbrf.Payload.Accounts)
	assert.Empty(t, cbrf.Payload.Accounts)
	assert.Equal(t, "", cbrf.Adr, "absent attributes default to empty")
	assert.Equal(t, "", cbrf.DateIn)
}

func TestParseBankFeed_FirstXMLMemberWins(t *testing.T) {
	other := `<ED807 xmlns="urn:cbr-ru:ed:v2.0" CreationDateTime="2024-11-30T06:30:00Z" EDAuthor="1"/>`
	archive := buildArchive(t,
		archiveMember{name: "readme.txt", data: []byte("not a directory")},
		archiveMember{name: "first.xml", data: encode1251(t, bankDirectory)},
		archiveMember{name: "second.xml", data: encode1251(t, other)},
	)

	feed, err := cbr.ParseBankFeed(archive)
	require.NoError(t, err)
	assert.Equal(t, "first.xml", feed.FileName)
	assert.Len(t, feed.Banks, 2)
}

func TestParseBankFeed_OnlySkippedEntries(t *testing.T) {
	doc := `<ED807 xmlns="urn:cbr-ru:ed:v2.0" CreationDateTime="2024-12-01" EDAuthor="4583001999">
		<BICDirectoryEntry BIC="000000001"/>
		<BICDirectoryEntry BIC="000000002"><Accounts Account="1"/></BICDirectoryEntry>
	</ED807>`
	feed, err := cbr.ParseBankFeed(buildArchive(t, archiveMember{name: "d.xml", data: encode1251(t, doc)}))
	require.NoError(t, err)
	assert.Empty(t, feed.Banks)
	assert.Equal(t, "2024-12-01", feed.CreationDate)
}

func TestParseBankFeed_Errors(t *testing.T) {
	tests := []struct {
		name    string
		archive func(t *testing.T) []byte
		wantErr error
	}{
		{
			name:    "not a zip archive",
			archive: func(t *testing.T) []byte { return []byte("<ED807/>") },
			wantErr: apperrors.ErrFormat,
		},
		{
			name: "no xml member",
			archive: func(t *testing.T) []byte {
				return buildArchive(t, archiveMember{name: "readme.txt", data: []byte("x")})
			},
			wantErr: apperrors.ErrFormat,
		},
		{
			name: "undefined code page byte",
			archive: func(t *testing.T) []byte {
				data := append(encode1251(t, `<ED807 xmlns="urn:cbr-ru:ed:v2.0">`), 0x98)
				return buildArchive(t, archiveMember{name: "d.xml", data: data})
			},
			wantErr: apperrors.ErrEncoding,
		},
		{
			name: "malformed xml",
			archive: func(t *testing.T) []byte {
				return buildArchive(t, archiveMember{name: "d.xml", data: encode1251(t, `<ED807 xmlns="urn:cbr-ru:ed:v2.0"><BICDirectoryEntry`)})
			},
			wantErr: apperrors.ErrFormat,
		},
		{
			name: "second document element",
			archive: func(t *testing.T) []byte {
				doc := `<ED807 xmlns="urn:cbr-ru:ed:v2.0" EDAuthor="4583001999">` +
					`<BICDirectoryEntry BIC="044525225"><ParticipantInfo NameP="A" PtType="20"/></BICDirectoryEntry></ED807>` +
					`<ED807 xmlns="urn:cbr-ru:ed:v2.0">` +
					`<BICDirectoryEntry BIC="999999999"><ParticipantInfo NameP="B" PtType="20"/></BICDirectoryEntry></ED807>`
				return buildArchive(t, archiveMember{name: "d.xml", data: encode1251(t, doc)})
			},
			wantErr: apperrors.ErrFormat,
		},
		{
			name: "markup after document element",
			archive: func(t *testing.T) []byte {
				doc := `<ED807 xmlns="urn:cbr-ru:ed:v2.0"></ED807><html><body>oops`
				return buildArchive(t, archiveMember{name: "d.xml", data: encode1251(t, doc)})
			},
			wantErr: apperrors.ErrFormat,
		},
		{
			name: "empty xml member",
			archive: func(t *testing.T) []byte {
				return buildArchive(t, archiveMember{name: "d.xml", data: nil})
			},
			wantErr: apperrors.ErrFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cbr.ParseBankFeed(tt.archive(t))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
