// File: app/app.go
package app

import (
	"bufio"
	"errors"
	"fmt"
	"go-atm-ledger/common"
	"go-atm-ledger/config"
	"go-atm-ledger/logger"
	"go-atm-ledger/model"
	"go-atm-ledger/repository"
	"go-atm-ledger/service"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.SetLevel(config.AppConfig.Log.Level)
	logger.Log.Info("Logger initialized")
	logger.Log.Info("Configuration loaded successfully")

	// --- Wiring All Layers Together ---
	accountRepo := repository.NewAccountRepository()
	atmService := service.NewAtmService(accountRepo)

	logger.Log.Info("ATM ledger service ready")

	runConsole(atmService, os.Stdin, os.Stdout)
}

// runConsole drives the service from a line-oriented command stream until
// EOF or quit. Commands:
//
//	register <card> <pin> <owner name> <initial balance>
//	balance  <card> <pin>
//	deposit  <card> <pin> <amount>
//	withdraw <card> <pin> <amount>
//	ledger   <card> <pin>
//	quit
func runConsole(atm *service.AtmService, in io.Reader, out io.Writer) {
	fmt.Fprintln(out, "ATM Account Ledger")
	fmt.Fprintln(out, "Commands: register, balance, deposit, withdraw, ledger, quit")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" || fields[0] == "exit" {
			break
		}
		if appErr := dispatch(atm, out, fields[0], fields[1:]); appErr != nil {
			appErr.Report(out)
		}
	}

	logger.Log.Info("Console session ended")
}

func dispatch(atm *service.AtmService, out io.Writer, command string, args []string) *common.AppError {
	switch command {
	case "register":
		return handleRegister(atm, out, args)
	case "balance":
		return handleBalance(atm, out, args)
	case "deposit":
		return handleCash(atm, out, args, atm.DepositCash)
	case "withdraw":
		return handleCash(atm, out, args, atm.WithdrawCash)
	case "ledger":
		return handleLedger(atm, out, args)
	default:
		return common.NewAppError(2, fmt.Sprintf("Unknown command %q", command), nil)
	}
}

// handleRegister expects: <card> <pin> <owner name...> <initial balance>.
// The owner name may contain spaces; the last argument is the balance.
func handleRegister(atm *service.AtmService, out io.Writer, args []string) *common.AppError {
	if len(args) < 4 {
		return common.NewAppError(2, "Usage: register <card> <pin> <owner name> <initial balance>", nil)
	}

	card, pin, appErr := parseKey(args[0], args[1])
	if appErr != nil {
		return appErr
	}
	balance, err := strconv.ParseFloat(args[len(args)-1], 64)
	if err != nil {
		return common.NewAppError(2, "Initial balance must be a number", err)
	}

	req := model.RegisterAccountRequest{
		CardNumber:     card,
		PIN:            pin,
		OwnerName:      strings.Join(args[2:len(args)-1], " "),
		InitialBalance: balance,
	}
	if err := common.Validate(req); err != nil {
		return common.NewAppError(2, "Invalid registration request", err)
	}

	account, err := atm.RegisterAccount(req.CardNumber, req.PIN, req.OwnerName, req.InitialBalance)
	if err != nil {
		return serviceError(err)
	}

	fmt.Fprintf(out, "Account registered for %s, balance $%.2f\n", account.OwnerName, account.Balance)
	return nil
}

func handleBalance(atm *service.AtmService, out io.Writer, args []string) *common.AppError {
	if len(args) != 2 {
		return common.NewAppError(2, "Usage: balance <card> <pin>", nil)
	}
	card, pin, appErr := parseKey(args[0], args[1])
	if appErr != nil {
		return appErr
	}
	if err := common.Validate(model.LookupRequest{CardNumber: card, PIN: pin}); err != nil {
		return common.NewAppError(2, "Invalid balance request", err)
	}

	balance, err := atm.CheckBalance(card, pin)
	if err != nil {
		return serviceError(err)
	}

	fmt.Fprintf(out, "Balance: $%.2f\n", balance)
	return nil
}

func handleCash(atm *service.AtmService, out io.Writer, args []string, op func(uint, uint, float64) (*model.Account, error)) *common.AppError {
	if len(args) != 3 {
		return common.NewAppError(2, "Usage: deposit|withdraw <card> <pin> <amount>", nil)
	}
	card, pin, appErr := parseKey(args[0], args[1])
	if appErr != nil {
		return appErr
	}
	amount, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return common.NewAppError(2, "Amount must be a number", err)
	}
	if err := common.Validate(model.CashRequest{CardNumber: card, PIN: pin, Amount: amount}); err != nil {
		return common.NewAppError(2, "Invalid amount", err)
	}

	account, err := op(card, pin, amount)
	if err != nil {
		return serviceError(err)
	}

	fmt.Fprintf(out, "Updated balance: $%.2f\n", account.Balance)
	return nil
}

func handleLedger(atm *service.AtmService, out io.Writer, args []string) *common.AppError {
	if len(args) != 2 {
		return common.NewAppError(2, "Usage: ledger <card> <pin>", nil)
	}
	card, pin, appErr := parseKey(args[0], args[1])
	if appErr != nil {
		return appErr
	}
	if err := common.Validate(model.LookupRequest{CardNumber: card, PIN: pin}); err != nil {
		return common.NewAppError(2, "Invalid ledger request", err)
	}

	path := filepath.Join(config.AppConfig.Ledger.OutputDir, fmt.Sprintf("ledger_%d.txt", card))
	if err := atm.WriteLedgerFile(path, card, pin); err != nil {
		return serviceError(err)
	}

	fmt.Fprintf(out, "Ledger written to %s\n", path)
	return nil
}

func parseKey(cardArg, pinArg string) (uint, uint, *common.AppError) {
	card, err := strconv.ParseUint(cardArg, 10, 64)
	if err != nil {
		return 0, 0, common.NewAppError(2, "Card number must be an unsigned integer", err)
	}
	pin, err := strconv.ParseUint(pinArg, 10, 64)
	if err != nil {
		return 0, 0, common.NewAppError(2, "PIN must be an unsigned integer", err)
	}
	return uint(card), uint(pin), nil
}

// serviceError maps the service's closed error set onto user-facing codes.
func serviceError(err error) *common.AppError {
	switch {
	case errors.Is(err, repository.ErrAccountNotFound):
		return common.NewAppError(4, "Account not found", err)
	case errors.Is(err, repository.ErrDuplicateAccount):
		return common.NewAppError(2, "Account already registered", err)
	case errors.Is(err, service.ErrInvalidAmount):
		return common.NewAppError(2, "Amount must not be negative", err)
	case errors.Is(err, service.ErrInsufficientFunds):
		return common.NewAppError(9, "Insufficient funds", err)
	default:
		return common.NewAppError(1, "Operation failed", err)
	}
}
