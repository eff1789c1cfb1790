package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/vfg2006/certification-manager-api/pkg/utils"
)

type Config struct {
	App    App    `mapstructure:",squash"`
	Cycle  Cycle  `mapstructure:",squash"`
	Import Import `mapstructure:",squash"`
	Report Report `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Cycle define o período do ciclo de certificação em apuração
type Cycle struct {
	PeriodStart string    `mapstructure:"cycle_period_start"` // Formato mm-yyyy
	PeriodEnd   string    `mapstructure:"cycle_period_end"`   // Formato mm-yyyy
	StartDate   time.Time `mapstructure:"-"`
	EndDate     time.Time `mapstructure:"-"`
}

// Import define as políticas de importação de planilhas
type Import struct {
	// Migrações retidas como registros sem pontuação (auditoria) ou
	// descartadas por completo
	RetainMigrations bool `mapstructure:"import_retain_migrations"`
	// Células numéricas nativas gravadas em centavos (divide por 100).
	// O padrão dos exports atuais é valor em reais.
	NumericCellsAsCents bool `mapstructure:"import_numeric_cells_as_cents"`
}

// Report define a saída do relatório do ciclo
type Report struct {
	OutputPath string `mapstructure:"report_output_path"`
}

func SetDefaults() {
	viper.SetDefault("LOG_LEVEL", "debug")

	// Ciclo vigente do manual: Julho/2025 a Dezembro/2025
	viper.SetDefault("CYCLE_PERIOD_START", "07-2025")
	viper.SetDefault("CYCLE_PERIOD_END", "12-2025")

	viper.SetDefault("IMPORT_RETAIN_MIGRATIONS", false)
	viper.SetDefault("IMPORT_NUMERIC_CELLS_AS_CENTS", false)

	viper.SetDefault("REPORT_OUTPUT_PATH", "")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	// Resolve as datas do período do ciclo
	start, err := utils.ParsePeriod(config.Cycle.PeriodStart)
	if err != nil {
		return nil, err
	}
	end, err := utils.ParsePeriod(config.Cycle.PeriodEnd)
	if err != nil {
		return nil, err
	}

	config.Cycle.StartDate = *start
	config.Cycle.EndDate = utils.EndOfMonth(*end)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
