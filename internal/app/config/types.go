package config

type DriverConfig struct {
	MongoDB MongoDB
	Redis   Redis
	Logger  Logger
}

type MongoDB struct {
	Port     string
	Host     string
	DbName   string
	Username string
	Password string
}

type Redis struct {
	Host     string
	Port     string
	Password string
}

type Logger struct {
	Level               string
	OutputFileName      string
	OutputErrorFileName string
}

type InternalConfig struct {
	App       App
	JWT       JWT
	Session   Session
	Wizard    Wizard
	Directory Directory
}

type App struct {
	Env                       string
	Port                      string
	Version                   string
	Address                   string
	Timezone                  string
	EndpointPrefix            string
	MaxRequests               int
	ShutdownTimeout           int
	LoginMaxAttemptsPerMinute int
	LoginBlockTimeInMinutes   int
}

type JWT struct {
	Secret        string
	ExpTimeInHour int
}

type Session struct {
	Backend        string
	TTLInHours     int
	CleanupSeconds int
}

type Wizard struct {
	TTLInMinutes int
}

type Directory struct {
	Backend            string
	SimulateLatency    bool
	CreateDelayInMs    int
	UpdateDelayInMs    int
	FetchDelayInMs     int
	DeleteDelayInMs    int
	SeedDemoRecords    bool
	SeedDemoCredential bool
}
