package domain

// Outcome names the terminal state of one page interaction. Every
// orchestrated request ends in exactly one of these.
type Outcome int

const (
	// OutcomeReady means the page model is complete and renderable.
	OutcomeReady Outcome = iota

	// OutcomeRedirect means the interaction succeeded (or was deliberately
	// swallowed) and the caller should be sent back to the product page.
	OutcomeRedirect

	// OutcomeReRender means a remote validator rejected the submission; the
	// page carries the user's input and the validator's messages.
	OutcomeReRender

	// OutcomeNotFound means the requested product does not exist.
	OutcomeNotFound

	// OutcomeFailed means a required downstream call was unavailable.
	OutcomeFailed
)

// NotFoundKey is the stable message key rendered on the not-found page.
// The raw remote error text is never shown.
const NotFoundKey = "customer.products.error.not_found"

// Result is the orchestrator's answer to the presenter: one outcome plus
// the data that outcome needs.
type Result struct {
	Outcome    Outcome
	Page       *ProductPage // set for OutcomeReady and OutcomeReRender
	RedirectTo int          // product id, set for OutcomeRedirect
	ErrorKey   string       // set for OutcomeNotFound
	Err        error        // cause, set for OutcomeFailed; logged, never rendered
}

func Ready(page *ProductPage) Result {
	return Result{Outcome: OutcomeReady, Page: page}
}

func RedirectToProduct(productID int) Result {
	return Result{Outcome: OutcomeRedirect, RedirectTo: productID}
}

func ReRenderWithErrors(page *ProductPage) Result {
	return Result{Outcome: OutcomeReRender, Page: page}
}

func NotFound() Result {
	return Result{Outcome: OutcomeNotFound, ErrorKey: NotFoundKey}
}

func Failed(err error) Result {
	return Result{Outcome: OutcomeFailed, Err: err}
}
