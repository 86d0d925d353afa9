// Package seed содержит фикстурный набор данных для первоначального наполнения БД.
package seed

// UserFixture описывает пользователя фикстур. Пароль задан в открытом виде
// и хэшируется перед записью в БД; в открытом виде он никогда не сохраняется.
type UserFixture struct {
	ID       string
	Name     string
	Email    string
	Password string
}

// User — пользователь, готовый к записи: пароль уже захэширован.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash []byte
}

// Customer описывает клиента из фикстур.
type Customer struct {
	ID       string
	Name     string
	Email    string
	ImageURL string
}

// Invoice описывает счёт из фикстур. Сумма в центах, дата в формате YYYY-MM-DD.
type Invoice struct {
	ID          string
	CustomerID  string
	AmountCents int64
	Status      string
	Date        string
}

// Revenue описывает выручку за месяц из фикстур.
type Revenue struct {
	Month   string
	Revenue int64
}

// Fixtures объединяет полный набор данных одной загрузки.
type Fixtures struct {
	Users     []User
	Customers []Customer
	Invoices  []Invoice
	Revenue   []Revenue
}

// Users — фикстуры пользователей.
var Users = []UserFixture{
	{
		ID:       "410544b2-4001-4271-9855-fec4b6a6442a",
		Name:     "User",
		Email:    "user@nextmail.com",
		Password: "123456",
	},
}

// Customers — фикстуры клиентов.
var Customers = []Customer{
	{
		ID:       "d6e15727-9fe1-4961-8c5b-ea44a9bd81aa",
		Name:     "Evil Rabbit",
		Email:    "evil@rabbit.com",
		ImageURL: "/customers/evil-rabbit.png",
	},
	{
		ID:       "3958dc9e-712f-4377-85e9-fec4b6a6442a",
		Name:     "Delba de Oliveira",
		Email:    "delba@oliveira.com",
		ImageURL: "/customers/delba-de-oliveira.png",
	},
	{
		ID:       "3958dc9e-742f-4377-85e9-fec4b6a6442a",
		Name:     "Lee Robinson",
		Email:    "lee@robinson.com",
		ImageURL: "/customers/lee-robinson.png",
	},
	{
		ID:       "76d65c26-f784-44a2-ac19-586678f7c2f2",
		Name:     "Michael Novotny",
		Email:    "michael@novotny.com",
		ImageURL: "/customers/michael-novotny.png",
	},
	{
		ID:       "cc27c14a-0acf-4f4a-a6c9-d45682c144b9",
		Name:     "Amy Burns",
		Email:    "amy@burns.com",
		ImageURL: "/customers/amy-burns.png",
	},
	{
		ID:       "13d07535-c59e-4157-a011-f8d2ef4e0cbb",
		Name:     "Balazs Orban",
		Email:    "balazs@orban.com",
		ImageURL: "/customers/balazs-orban.png",
	},
}

// Invoices — фикстуры счетов. Идентификаторы фиксированы, чтобы повторная
// загрузка пропускала уже существующие строки, а не дублировала их.
var Invoices = []Invoice{
	{ID: "9f5b0a1e-3d41-4b69-9a2e-111111111101", CustomerID: Customers[0].ID, AmountCents: 15795, Status: "pending", Date: "2022-12-06"},
	{ID: "9f5b0a1e-3d41-4b69-9a2e-111111111102", CustomerID: Customers[1].ID, AmountCents: 20348, Status: "pending", Date: "2022-11-14"},
	{ID: "9f5b0a1e-3d41-4b69-9a2e-111111111103", CustomerID: Customers[4].ID, AmountCents: 3040, Status: "paid", Date: "2022-10-29"},
	{ID: "9f5b0a1e-3d41-4b69-9a2e-111111111104", CustomerID: Customers[3].ID, AmountCents: 44800, Status: "paid", Date: "2023-09-10"},
	{ID: "9f5b0a1e-3d41-4b69-9a2e-111111111105", CustomerID: Customers[5].ID, AmountCents: 34577, Status: "pending", Date: "2023-08-05"},
	{ID: "9f5b0a1e-3d41-4b69-9a2e-111111111106", CustomerID: Customers[2].ID, AmountCents: 54246, Status: "pending", Date: "2023-07-16"},
	{ID: "9f5b0a1e-3d41-4b69-9a2e-111111111107", CustomerID: Customers[0].ID, AmountCents: 666, Status: "pending", Date: "2023-06-27"},
	{ID: "9f5b0a1e-3d41-4b69-9a2e-111111111108", CustomerID: Customers[3].ID, AmountCents: 32545, Status: "paid", Date: "2023-06-09"},
	{ID: "9f5b0a1e-3d41-4b69-9a2e-111111111109", CustomerID: Customers[4].ID, AmountCents: 1250, Status: "paid", Date: "2023-06-17"},
	{ID: "9f5b0a1e-3d41-4b69-9a2e-111111111110", CustomerID: Customers[5].ID, AmountCents: 8546, Status: "paid", Date: "2023-06-07"},
	{ID: "9f5b0a1e-3d41-4b69-9a2e-111111111111", CustomerID: Customers[1].ID, AmountCents: 500, Status: "paid", Date: "2023-08-19"},
	{ID: "9f5b0a1e-3d41-4b69-9a2e-111111111112", CustomerID: Customers[5].ID, AmountCents: 8945, Status: "paid", Date: "2023-06-03"},
	{ID: "9f5b0a1e-3d41-4b69-9a2e-111111111113", CustomerID: Customers[2].ID, AmountCents: 1000, Status: "paid", Date: "2022-06-05"},
}

// Months — фикстуры выручки по месяцам.
var Months = []Revenue{
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
