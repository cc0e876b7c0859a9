// Package dashboard composes the repositories into the operations the
// dashboard consumes, applying display formatting at the boundary.
package dashboard

import (
	"context"
	"time"

	"invoice-dashboard-backend/internal/format"
	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const latestInvoiceCount = 5

type Service struct {
	invoices     *repository.InvoiceRepository
	customers    *repository.CustomerRepository
	revenue      *repository.RevenueRepository
	deletePolicy repository.DeletePolicy
	log          *logrus.Logger
}

func NewService(
	invoices *repository.InvoiceRepository,
	customers *repository.CustomerRepository,
	revenue *repository.RevenueRepository,
	deletePolicy repository.DeletePolicy,
	log *logrus.Logger,
) *Service {
	return &Service{
		invoices:     invoices,
		customers:    customers,
		revenue:      revenue,
		deletePolicy: deletePolicy,
		log:          log,
	}
}

func (s *Service) fail(op string, err error) error {
	s.log.WithError(err).Error(op)
	return err
}

// FetchRevenue returns all revenue rows, unordered.
func (s *Service) FetchRevenue(ctx context.Context) ([]models.Revenue, error) {
	rows, err := s.revenue.FindAll(ctx)
	if err != nil {
		return nil, s.fail("fetch revenue", err)
	}
	return rows, nil
}

// LatestInvoice is one row of the dashboard's recent-invoice list.
// Amount is already a display string.
type LatestInvoice struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	ImageURL string    `json:"image_url"`
	Amount   string    `json:"amount"`
}

// FetchLatestInvoices returns the 5 most recent invoices by date
// descending, joined with their customer.
func (s *Service) FetchLatestInvoices(ctx context.Context) ([]LatestInvoice, error) {
	rows, err := s.invoices.FindLatest(ctx, latestInvoiceCount)
	if err != nil {
		return nil, s.fail("fetch latest invoices", err)
	}

	latest := make([]LatestInvoice, 0, len(rows))
	for _, row := range rows {
		latest = append(latest, LatestInvoice{
			ID:       row.ID,
			Name:     row.Name,
			Email:    row.Email,
			ImageURL: row.ImageURL,
			Amount:   format.Currency(row.Amount),
		})
	}
	return latest, nil
}

// CardData holds the four dashboard summary cards. The sums are
// display strings; the counts are raw.
type CardData struct {
	NumberOfInvoices     int64  `json:"number_of_invoices"`
	NumberOfCustomers    int64  `json:"number_of_customers"`
	TotalPaidInvoices    string `json:"total_paid_invoices"`
	TotalPendingInvoices string `json:"total_pending_invoices"`
}

// FetchCardData issues its four sub-queries concurrently and joins on
// all of them. They touch disjoint aggregates, so no ordering between
// the branches is needed; issuing them sequentially is a regression.
func (s *Service) FetchCardData(ctx context.Context) (*CardData, error) {
	var (
		invoiceCount  int64
		customerCount int64
		paidSum       int64
		pendingSum    int64
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		invoiceCount, err = s.invoices.Count(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		customerCount, err = s.customers.Count(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		paidSum, err = s.invoices.SumAmountByStatus(ctx, models.InvoiceStatusPaid)
		return err
	})
	g.Go(func() error {
		var err error
		pendingSum, err = s.invoices.SumAmountByStatus(ctx, models.InvoiceStatusPending)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, s.fail("fetch card data", err)
	}

	return &CardData{
		NumberOfInvoices:     invoiceCount,
		NumberOfCustomers:    customerCount,
		TotalPaidInvoices:    format.Currency(paidSum),
		TotalPendingInvoices: format.Currency(pendingSum),
	}, nil
}

// FilteredInvoice is one row of the paginated invoice table. Amount
// stays in cents; only the date is formatted at this boundary.
type FilteredInvoice struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	ImageURL string    `json:"image_url"`
	Amount   int64     `json:"amount"`
	Status   string    `json:"status"`
	Date     string    `json:"date"`
}

// FetchFilteredInvoices returns one page (size 6, 1-based page number)
// of invoices matching the search query, ordered by date descending.
func (s *Service) FetchFilteredInvoices(ctx context.Context, query string, page int) ([]FilteredInvoice, error) {
	rows, err := s.invoices.FindFiltered(ctx, query, page)
	if err != nil {
		return nil, s.fail("fetch filtered invoices", err)
	}

	filtered := make([]FilteredInvoice, 0, len(rows))
	for _, row := range rows {
		filtered = append(filtered, FilteredInvoice{
			ID:       row.ID,
			Name:     row.Name,
			Email:    row.Email,
			ImageURL: row.ImageURL,
			Amount:   row.Amount,
			Status:   row.Status,
			Date:     format.Date(row.Date),
		})
	}
	return filtered, nil
}

// FetchInvoicesPages returns the total page count for a query.
func (s *Service) FetchInvoicesPages(ctx context.Context, query string) (int, error) {
	pages, err := s.invoices.PageCount(ctx, query)
	if err != nil {
		return 0, s.fail("fetch invoice pages", err)
	}
	return pages, nil
}

// InvoiceDetail is the single-invoice edit view. Amount is in dollars
// here and nowhere else.
type InvoiceDetail struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Amount     float64   `json:"amount"`
	Status     string    `json:"status"`
}

// FetchInvoiceByID returns one invoice with its amount converted to
// major units. Returns repository.ErrNotFound when no row matches.
func (s *Service) FetchInvoiceByID(ctx context.Context, id uuid.UUID) (*InvoiceDetail, error) {
	invoice, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, s.fail("fetch invoice by id", err)
	}

	return &InvoiceDetail{
		ID:         invoice.ID,
		CustomerID: invoice.CustomerID,
		Amount:     float64(invoice.Amount) / 100,
		Status:     invoice.Status,
	}, nil
}

// FetchCustomers returns id+name for every customer, name ascending.
func (s *Service) FetchCustomers(ctx context.Context) ([]repository.CustomerName, error) {
	names, err := s.customers.FindAllNames(ctx)
	if err != nil {
		return nil, s.fail("fetch customers", err)
	}
	return names, nil
}

// CustomerSummary is one row of the customers table: a customer plus
// the figures derived from their invoices. The sums are display
// strings.
type CustomerSummary struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	ImageURL      string    `json:"image_url"`
	TotalInvoices int       `json:"total_invoices"`
	TotalPending  string    `json:"total_pending"`
	TotalPaid     string    `json:"total_paid"`
}

// FetchFilteredCustomers matches customers by name or email, fetches
// their invoices as one batch keyed by the matched id set, and groups
// the figures in memory.
func (s *Service) FetchFilteredCustomers(ctx context.Context, query string) ([]CustomerSummary, error) {
	customers, err := s.customers.FindFiltered(ctx, query)
	if err != nil {
		return nil, s.fail("fetch filtered customers", err)
	}

	ids := make([]uuid.UUID, 0, len(customers))
	for _, c := range customers {
		ids = append(ids, c.ID)
	}

	invoices, err := s.invoices.FindByCustomerIDs(ctx, ids)
	if err != nil {
		return nil, s.fail("fetch filtered customers", err)
	}

	totals := groupInvoiceTotals(invoices)

	summaries := make([]CustomerSummary, 0, len(customers))
	for _, c := range customers {
		t := totals[c.ID]
		summaries = append(summaries, CustomerSummary{
			ID:            c.ID,
			Name:          c.Name,
			Email:         c.Email,
			ImageURL:      c.ImageURL,
			TotalInvoices: t.count,
			TotalPending:  format.Currency(t.pending),
			TotalPaid:     format.Currency(t.paid),
		})
	}
	return summaries, nil
}

// invoiceTotals accumulates one customer's invoice figures in cents.
type invoiceTotals struct {
	count   int
	pending int64
	paid    int64
}

// groupInvoiceTotals attributes every invoice to exactly one customer.
func groupInvoiceTotals(invoices []models.Invoice) map[uuid.UUID]invoiceTotals {
	totals := make(map[uuid.UUID]invoiceTotals)
	for _, invoice := range invoices {
		t := totals[invoice.CustomerID]
		t.count++
		switch invoice.Status {
		case models.InvoiceStatusPending:
			t.pending += invoice.Amount
		case models.InvoiceStatusPaid:
			t.paid += invoice.Amount
		}
		totals[invoice.CustomerID] = t
	}
	return totals
}

// CreateInvoice stores a new invoice dated today. Amount is in cents.
func (s *Service) CreateInvoice(ctx context.Context, customerID uuid.UUID, amount int64, status string) (*models.Invoice, error) {
	invoice, err := s.invoices.Create(ctx, customerID, amount, status, time.Now())
	if err != nil {
		return nil, s.fail("create invoice", err)
	}
	return invoice, nil
}

func (s *Service) UpdateInvoice(ctx context.Context, id, customerID uuid.UUID, amount int64, status string) (*models.Invoice, error) {
	invoice, err := s.invoices.Update(ctx, id, customerID, amount, status)
	if err != nil {
		return nil, s.fail("update invoice", err)
	}
	return invoice, nil
}

func (s *Service) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	if err := s.invoices.Delete(ctx, id); err != nil {
		return s.fail("delete invoice", err)
	}
	return nil
}

// DeleteCustomer removes a customer under the configured policy.
func (s *Service) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	if err := s.customers.Delete(ctx, id, s.deletePolicy); err != nil {
		return s.fail("delete customer", err)
	}
	return nil
}
