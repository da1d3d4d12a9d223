// Package cmd implements the CLI application to keep the shop books.
package cmd

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dawoodab/khata"
	"github.com/google/subcommands"
)

// Commands lists every subcommand of the kh tool. A main package iterates it
// and registers each one.
var Commands = []subcommands.Command{
	&addCustomerCmd{},
	&customersCmd{},
	&rmCustomerCmd{},

	&addProductCmd{},
	&productsCmd{},
	&stockCmd{},
	&rmProductCmd{},

	&sellCmd{},
	&salesCmd{},
	&rmSaleCmd{},

	&buyCmd{},
	&purchasesCmd{},
	&rmPurchaseCmd{},

	&payCmd{},
	&receiveCmd{},

	&summaryCmd{},
	&statementCmd{},
	&ledgerCmd{},
	&exportCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data", "", "Path to the data directory (overrides KHATA_DATA_DIR)")
var storeKind = flag.String("store", "", "Storage backend, file or sqlite (overrides KHATA_STORE)")

// openBooks opens the configured store and loads the books from it. The
// returned closer must be called once the command is done.
func openBooks() (*khata.Books, func(), error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if *storeKind != "" {
		cfg.Store = *storeKind
	}

	store, err := cfg.OpenStore()
	if err != nil {
		return nil, nil, err
	}

	// First run only: remember whether settings exist before loading, so the
	// configured currency can seed them.
	settingsData, err := store.Read(khata.KeySettings)
	if err != nil {
		store.Close()
		return nil, nil, err
	}

	books, err := khata.OpenBooks(store)
	if err != nil {
		store.Close()
		return nil, nil, err
	}
	if settingsData == nil && cfg.Currency != "" {
		log.Println("warning, books do not exist yet, starting empty ones")
		s := books.Settings()
		s.Currency = cfg.Currency
		if err := books.SaveSettings(s); err != nil {
			store.Close()
			return nil, nil, err
		}
	}
	return books, func() { store.Close() }, nil
}

// fail prints an error the way every subcommand reports failures.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	if khata.IsValidation(err) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}
