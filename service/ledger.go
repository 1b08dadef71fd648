// file: service/ledger.go

package service

import (
	"bufio"
	"fmt"
	"go-atm-ledger/logger"
	"go-atm-ledger/model"
	"io"
	"os"
	"path/filepath"
)

// PrintLedger writes the account statement to the given destination: a
// header with owner name, card number and PIN, followed by every
// transaction record in the order it was recorded.
func (s *AtmService) PrintLedger(w io.Writer, card, pin uint) error {
	key := model.CardKey{CardNumber: card, PIN: pin}
	account, err := s.repo.GetAccount(key)
	if err != nil {
		return err
	}
	records, err := s.repo.GetTransactions(key)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Name: %s\nCard Number: %d\nPIN: %d\n", account.OwnerName, account.CardNumber, account.PIN); err != nil {
		return err
	}
	for _, record := range records {
		if _, err := fmt.Fprintln(w, record.String()); err != nil {
			return err
		}
	}
	return nil
}

// WriteLedgerFile renders the account statement to a file, replacing it
// atomically: the statement is written to a temp file first, then moved
// over the target so a failed write never leaves a truncated ledger.
func (s *AtmService) WriteLedgerFile(path string, card, pin uint) error {
	tmp := path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("could not create ledger file: %w", err)
	}

	bw := bufio.NewWriter(f)
	if err := s.PrintLedger(bw, card, pin); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("could not flush ledger file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("could not close ledger file: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("could not replace ledger file: %w", err)
	}

	logger.Log.WithField("path", filepath.Clean(path)).Info("Ledger written")
	return nil
}
