package seed

import (
	"time"

	"invoice-dashboard-backend/internal/models"

	"github.com/google/uuid"
)

type userFixture struct {
	ID       uuid.UUID
	Name     string
	Email    string
	Password string // plaintext, hashed at seed time
}

type customerFixture struct {
	ID       uuid.UUID
	Name     string
	Email    string
	ImageURL string
}

type invoiceFixture struct {
	CustomerID uuid.UUID
	Amount     int64 // cents
	Status     string
	Date       time.Time
}

type revenueFixture struct {
	Month   string
	Revenue int64
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

var userFixtures = []userFixture{
	{
		ID:       uuid.MustParse("410544b2-4001-4271-9855-fec4b6a6442a"),
		Name:     "User",
		Email:    "user@nextmail.com",
		Password: "123456",
	},
}

var customerFixtures = []customerFixture{
	{
		ID:       uuid.MustParse("d6e15727-9fe1-4961-8c5b-ea44a9bd81aa"),
		Name:     "Evil Rabbit",
		Email:    "evil@rabbit.com",
		ImageURL: "/customers/evil-rabbit.png",
	},
	{
		ID:       uuid.MustParse("3958dc9e-712f-4377-85e9-fec4b6a6442a"),
		Name:     "Delba de Oliveira",
		Email:    "delba@oliveira.com",
		ImageURL: "/customers/delba-de-oliveira.png",
	},
	{
		ID:       uuid.MustParse("3958dc9e-742f-4377-85e9-fec4b6a6442a"),
		Name:     "Lee Robinson",
		Email:    "lee@robinson.com",
		ImageURL: "/customers/lee-robinson.png",
	},
	{
		ID:       uuid.MustParse("76d65c26-f784-44a2-ac19-586678f7c2f2"),
		Name:     "Michael Novotny",
		Email:    "michael@novotny.com",
		ImageURL: "/customers/michael-novotny.png",
	},
	{
		ID:       uuid.MustParse("cc27c14a-0acf-4f4a-a6c9-d45682c144b9"),
		Name:     "Amy Burns",
		Email:    "amy@burns.com",
		ImageURL: "/customers/amy-burns.png",
	},
	{
		ID:       uuid.MustParse("13d07535-c59e-4157-a011-f8d2ef4e0cbb"),
		Name:     "Balazs Orban",
		Email:    "balazs@orban.com",
		ImageURL: "/customers/balazs-orban.png",
	},
}

var invoiceFixtures = []invoiceFixture{
	{CustomerID: customerFixtures[0].ID, Amount: 15795, Status: models.InvoiceStatusPending, Date: day(2022, time.December, 6)},
	{CustomerID: customerFixtures[1].ID, Amount: 20348, Status: models.InvoiceStatusPending, Date: day(2022, time.November, 14)},
	{CustomerID: customerFixtures[4].ID, Amount: 3040, Status: models.InvoiceStatusPaid, Date: day(2022, time.October, 29)},
	{CustomerID: customerFixtures[3].ID, Amount: 44800, Status: models.InvoiceStatusPaid, Date: day(2023, time.September, 10)},
	{CustomerID: customerFixtures[5].ID, Amount: 34577, Status: models.InvoiceStatusPending, Date: day(2023, time.August, 5)},
	{CustomerID: customerFixtures[2].ID, Amount: 54246, Status: models.InvoiceStatusPending, Date: day(2023, time.July, 16)},
	{CustomerID: customerFixtures[0].ID, Amount: 666, Status: models.InvoiceStatusPending, Date: day(2023, time.June, 27)},
	{CustomerID: customerFixtures[3].ID, Amount: 32545, Status: models.InvoiceStatusPaid, Date: day(2023, time.June, 9)},
	{CustomerID: customerFixtures[4].ID, Amount: 1250, Status: models.InvoiceStatusPaid, Date: day(2023, time.June, 17)},
	{CustomerID: customerFixtures[5].ID, Amount: 8546, Status: models.InvoiceStatusPaid, Date: day(2023, time.February, 14)},
	{CustomerID: customerFixtures[1].ID, Amount: 500, Status: models.InvoiceStatusPaid, Date: day(2023, time.January, 31)},
	{CustomerID: customerFixtures[2].ID, Amount: 8945, Status: models.InvoiceStatusPaid, Date: day(2023, time.March, 4)},
	{CustomerID: customerFixtures[0].ID, Amount: 1000, Status: models.InvoiceStatusPaid, Date: day(2022, time.June, 5)},
}

var revenueFixtures = []revenueFixture{
	{Month: "Jan", Revenue: 2000},
	{Month: "Feb", Revenue: 1800},
	{Month: "Mar", Revenue: 2200},
	{Month: "Apr", Revenue: 2500},
	{Month: "May", Revenue: 2300},
	{Month: "Jun", Revenue: 3200},
	{Month: "Jul", Revenue: 3500},
	{Month: "Aug", Revenue: 3700},
	{Month: "Sep", Revenue: 2500},
	{Month: "Oct", Revenue: 2800},
	{Month: "Nov", Revenue: 3000},
	{Month: "Dec", Revenue: 4800},
}
