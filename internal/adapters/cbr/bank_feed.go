package cbr

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/SscSPs/cbr_loader/internal/apperrors"
	"github.com/SscSPs/cbr_loader/internal/core/domain"
	"golang.org/x/text/encoding/charmap"
)

// BankDirectoryNamespace is the namespace of the ED807 directory elements.
const BankDirectoryNamespace = "urn:cbr-ru:ed:v2.0"

// cp1251Undefined is the one byte Microsoft's code page 1251 leaves unassigned.
const cp1251Undefined = 0x98

type bicDirectoryEntry struct {
	BIC             *string           `xml:"BIC,attr"`
	ParticipantInfo *attributeHolder  `xml:"urn:cbr-ru:ed:v2.0 ParticipantInfo"`
	Accounts        []attributeHolder `xml:"urn:cbr-ru:ed:v2.0 Accounts"`
}

type attributeHolder struct {
	Attrs []xml.Attr `xml:",any,attr"`
}

// ParseBankFeed unpacks the first XML member of a BIC directory archive, decodes it
// from windows-1251 and returns every entry that carries participant info.
// Entries without participant info are skipped.
func ParseBankFeed(data []byte) (domain.BankFeed, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return domain.BankFeed{}, fmt.Errorf("%w: bank feed is not a ZIP archive: %w", apperrors.ErrFormat, err)
	}

	var member *zip.File
	for _, f := range zr.File {
		if strings.HasSuffix(f.Name, ".xml") {
			member = f
			break
		}
	}
	if member == nil {
		return domain.BankFeed{}, fmt.Errorf("%w: no XML files found in the archive", apperrors.ErrFormat)
	}

	raw, err := readMember(member)
	if err != nil {
		return domain.BankFeed{}, err
	}
	text, err := decodeWindows1251(raw)
	if err != nil {
		return domain.BankFeed{}, fmt.Errorf("%s: %w", member.Name, err)
	}
	return parseBankDirectory(text, member.Name)
}

func readMember(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open %s: %w", apperrors.ErrFormat, f.Name, err)
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %w", apperrors.ErrFormat, f.Name, err)
	}
	return raw, nil
}

func decodeWindows1251(raw []byte) (string, error) {
	if i := bytes.IndexByte(raw, cp1251Undefined); i >= 0 {
		return "", fmt.Errorf("%w: byte 0x%X at offset %d is undefined in windows-1251", apperrors.ErrEncoding, cp1251Undefined, i)
	}
	decoded, err := charmap.Windows1251.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", apperrors.ErrEncoding, err)
	}
	return string(decoded), nil
}

// parseBankDirectory walks an already decoded ED807 document.
func parseBankDirectory(text, fileName string) (domain.BankFeed, error) {
	dec := xml.NewDecoder(strings.NewReader(text))
	// The declaration still names windows-1251 but the text is UTF-8 by now.
	dec.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) { return input, nil }

	feed := domain.BankFeed{FileName: fileName, Banks: []domain.Bank{}}
	rootSeen := false
	depth := 0
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return domain.BankFeed{}, fmt.Errorf("%w: malformed bank directory %s: %w", apperrors.ErrFormat, fileName, err)
		}

		switch t := tok.(type) {
		case xml.EndElement:
			depth--
			if depth == 0 {
				if err := ensureDocumentEnd(dec); err != nil {
					return domain.BankFeed{}, fmt.Errorf("%w: malformed bank directory %s: %w", apperrors.ErrFormat, fileName, err)
				}
				return feed, nil
			}
		case xml.StartElement:
			if !rootSeen {
				rootSeen = true
				depth++
				creation, _ := attrValue(t.Attr, "CreationDateTime")
				if len(creation) > 10 {
					creation = creation[:10]
				}
				feed.CreationDate = creation
				feed.EDAuthor, _ = attrValue(t.Attr, "EDAuthor")
				continue
			}
			if t.Name.Space != BankDirectoryNamespace || t.Name.Local != "BICDirectoryEntry" {
				depth++
				continue
			}

			// DecodeElement consumes the matching end element.
			var entry bicDirectoryEntry
			if err := dec.DecodeElement(&entry, &t); err != nil {
				return domain.BankFeed{}, fmt.Errorf("%w: malformed directory entry in %s: %w", apperrors.ErrFormat, fileName, err)
			}
			if entry.ParticipantInfo == nil {
				continue
			}
			if entry.BIC == nil || *entry.BIC == "" {
				return domain.BankFeed{}, fmt.Errorf("%w: directory entry without BIC in %s", apperrors.ErrFormat, fileName)
			}
			feed.Banks = append(feed.Banks, entry.toBank(feed))
		}
	}

	if !rootSeen {
		return domain.BankFeed{}, fmt.Errorf("%w: bank directory %s is empty", apperrors.ErrFormat, fileName)
	}
	return domain.BankFeed{}, fmt.Errorf("%w: bank directory %s ends before its document element closes", apperrors.ErrFormat, fileName)
}

func (e bicDirectoryEntry) toBank(feed domain.BankFeed) domain.Bank {
	info := attrMap(e.ParticipantInfo.Attrs)
	accounts := make([]map[string]string, 0, len(e.Accounts))
	for _, acc := range e.Accounts {
		accounts = append(accounts, attrMap(acc.Attrs))
	}
	ksnp := ""
	if len(accounts) > 0 {
		ksnp = accounts[0]["Account"]
	}

	return domain.Bank{
		BIC:      *e.BIC,
		PZN:      info["PtType"],
		Rgn:      info["Rgn"],
		Ind:      info["Ind"],
		Tnp:      info["Tnp"],
		Nnp:      info["Nnp"],
		Adr:      info["Adr"],
		NameP:    info["NameP"],
		NewNum:   *e.BIC,
		RegN:     info["RegN"],
		KSNP:     ksnp,
		DateIn:   info["DateIn"],
		CBRFDate: feed.CreationDate,
		CBRFFile: feed.FileName,
		CRC7:     info["UID"],
		Payload: domain.BankPayload{
			EDAuthor:        feed.EDAuthor,
			Accounts:        accounts,
			ParticipantInfo: info,
			SourceEncoding:  domain.SourceEncodingWindows1251,
		},
	}
}

// attrMap collects element attributes, leaving out namespace declarations.
// Namespaced attributes are keyed as {namespace}name.
func attrMap(attrs []xml.Attr) map[string]string {
	m := make(map[string]string, len(attrs))
	for _, a := range attrs {
		if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
			continue
		}
		key := a.Name.Local
		if a.Name.Space != "" {
			key = "{" + a.Name.Space + "}" + a.Name.Local
		}
		m[key] = a.Value
	}
	return m
}
