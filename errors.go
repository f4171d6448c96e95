package depot

import "errors"

// The pipeline fails fast: any of these errors aborts the whole run, there is
// no partial-success mode. They are sentinels so callers can test them with
// errors.Is after wrapping.
var (
	// ErrPathNotFound reports that the documents directory does not exist.
	ErrPathNotFound = errors.New("path not found")
	// ErrNoDocumentsFound reports a directory without a single order confirmation.
	ErrNoDocumentsFound = errors.New("no documents found")
	// ErrMalformedDocument reports a document whose anchor line or numeric
	// fields are missing or unparseable.
	ErrMalformedDocument = errors.New("malformed document")
	// ErrUnrecognizedOrderType reports a document carrying neither the
	// lump-sum nor the savings-plan marker phrase.
	ErrUnrecognizedOrderType = errors.New("unrecognized order type")
	// ErrDateNotFound reports a document without a parseable execution date.
	ErrDateNotFound = errors.New("execution date not found")
	// ErrZeroQuantity reports an order with zero shares, whose price per share
	// would otherwise silently be infinite.
	ErrZeroQuantity = errors.New("zero share quantity")
	// ErrEmptyPortfolio reports a repository built from no orders at all.
	ErrEmptyPortfolio = errors.New("empty portfolio")
	// ErrUnknownInstrument reports a timeline request for an ISIN without orders.
	ErrUnknownInstrument = errors.New("unknown instrument")
)
