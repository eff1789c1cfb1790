package domain

import "fmt"

// FileReadError indica falha de leitura ou decodificação do arquivo de
// planilha. É fatal para a importação inteira.
type FileReadError struct {
	Path  string
	Cause error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("erro ao ler arquivo %s: %v", e.Path, e.Cause)
}

func (e *FileReadError) Unwrap() error {
	return e.Cause
}

// ImportError encapsula falhas levantadas no meio do processamento da
// planilha (estrutura de workbook inválida, aba ilegível, sem linhas de
// dados). Também é fatal para a importação inteira; defeitos de células
// individuais nunca chegam aqui, são absorvidos com valores padrão.
type ImportError struct {
	Stage string
	Cause error
}

func (e *ImportError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("erro ao processar planilha: %s", e.Stage)
	}
	return fmt.Sprintf("erro ao processar planilha (%s): %v", e.Stage, e.Cause)
}

func (e *ImportError) Unwrap() error {
	return e.Cause
}
