package cbr

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/cbr_loader/internal/apperrors"
	"github.com/SscSPs/cbr_loader/internal/core/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/net/html/charset"
)

const rateFeedDateLayout = "02.01.2006"

type valCurs struct {
	Attrs   []xml.Attr `xml:",any,attr"`
	Valutes []valute   `xml:"Valute"`
}

type valute struct {
	CharCode *string `xml:"CharCode"`
	Nominal  *string `xml:"Nominal"`
	Value    *string `xml:"Value"`
}

// ParseRateFeed parses the daily rate document. Each rate is Value/Nominal,
// rounded to domain.RateScale digits.
func ParseRateFeed(data []byte) (domain.RateFeed, error) {
	var doc valCurs
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charset.NewReaderLabel
	if err := dec.Decode(&doc); err != nil {
		return domain.RateFeed{}, fmt.Errorf("%w: malformed rate feed: %w", apperrors.ErrFormat, err)
	}
	if err := ensureDocumentEnd(dec); err != nil {
		return domain.RateFeed{}, fmt.Errorf("%w: malformed rate feed: %w", apperrors.ErrFormat, err)
	}

	rawDate, ok := attrValue(doc.Attrs, "Date")
	if !ok {
		return domain.RateFeed{}, fmt.Errorf("%w: rate feed has no Date attribute", apperrors.ErrFormat)
	}
	date, err := time.Parse(rateFeedDateLayout, strings.TrimSpace(rawDate))
	if err != nil {
		return domain.RateFeed{}, fmt.Errorf("%w: invalid rate feed date %q: %w", apperrors.ErrFormat, rawDate, err)
	}

	feed := domain.RateFeed{Date: date, Rates: make([]domain.ParsedRate, 0, len(doc.Valutes))}
	for i, v := range doc.Valutes {
		rate, err := v.parse()
		if err != nil {
			return domain.RateFeed{}, fmt.Errorf("entry %d: %w", i+1, err)
		}
		feed.Rates = append(feed.Rates, rate)
	}
	return feed, nil
}

func (v valute) parse() (domain.ParsedRate, error) {
	if v.CharCode == nil || v.Value == nil || v.Nominal == nil {
		return domain.ParsedRate{}, fmt.Errorf("%w: currency entry requires CharCode, Nominal and Value", apperrors.ErrFormat)
	}
	code := strings.TrimSpace(*v.CharCode)

	nominal, err := strconv.Atoi(strings.TrimSpace(*v.Nominal))
	if err != nil {
		return domain.ParsedRate{}, fmt.Errorf("%w: invalid nominal %q for %s: %w", apperrors.ErrFormat, *v.Nominal, code, err)
	}
	if nominal <= 0 {
		return domain.ParsedRate{}, fmt.Errorf("%w: nominal for %s must be positive, got %d", apperrors.ErrFormat, code, nominal)
	}

	value, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(*v.Value), ",", "."))
	if err != nil {
		return domain.ParsedRate{}, fmt.Errorf("%w: invalid value %q for %s: %w", apperrors.ErrFormat, *v.Value, code, err)
	}

	return domain.ParsedRate{
		Code: code,
		Rate: value.DivRound(decimal.NewFromInt(int64(nominal)), domain.RateScale),
	}, nil
}

func attrValue(attrs []xml.Attr, local string) (string, bool) {
	for _, a := range attrs {
		if a.Name.Space == "" && a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// ensureDocumentEnd consumes the rest of the input once the document element
// has closed. Only comments, processing instructions and whitespace may follow.
func ensureDocumentEnd(dec *xml.Decoder) error {
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			return fmt.Errorf("junk after document element: <%s>", t.Name.Local)
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return errors.New("junk after document element: text")
			}
		}
	}
}
