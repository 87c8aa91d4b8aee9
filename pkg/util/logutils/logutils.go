// Copyright (c) 2026, proxmox-hostname-change contributors.
// Licensed under the MIT License as shown at https://opensource.org/license/mit.

package logutils

import (
	"fmt"
	"os"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/m-panczyk/proxmox-hostname-change/pkg/util"
)

// Waiter pairs a blocking function with the message to display while it
// runs.
type Waiter struct {
	Message      string
	WaitFunction func() error

	err   error
	done  bool
	mutex sync.RWMutex
}

var colorReset = "\x1b[0m"
var colorYellow = "\x1b[33m"
var colorGreen = "\x1b[32m"

var clearLine = "\x1b[K"

var waitStrings = []string{
	colorYellow + "waiting",
	colorYellow + "waiting.",
	colorYellow + "waiting..",
	colorYellow + "waiting...",
	colorYellow + "waiting ..",
	colorYellow + "waiting  .",
}

func waitString(msg string, iter int) string {
	idx := iter % len(waitStrings)
	return fmt.Sprintf("%s: %s%s%s", msg, waitStrings[idx], colorReset, clearLine)
}

// backup moves the cursor up n lines.
//
// ^[[%dA is the VT-100 escape code to move the cursor up %d lines.
// In Go, ^[ is \x1b.
func backup(n int) {
	fmt.Printf("\x1b[%dA", n)
}

// WaitFor runs the waiter's function, pretty-printing an animated
// status line while it does.  The animation is suppressed when stdout
// is not a terminal.  The function's error is returned.
func WaitFor(w *Waiter) error {
	doBackup, err := util.FileIsTTY(os.Stdout)
	if err != nil {
		doBackup = false
	}
	if log.GetLevel() < log.InfoLevel {
		doBackup = false
	}

	go func() {
		err := w.WaitFunction()
		w.mutex.Lock()
		w.err = err
		w.done = true
		w.mutex.Unlock()
	}()

	loops := 0
	for {
		w.mutex.RLock()
		done := w.done
		w.mutex.RUnlock()
		if done {
			break
		}

		log.Info(waitString(w.Message, loops))
		loops = loops + 1
		if doBackup {
			backup(1)
		}
		time.Sleep(500 * time.Millisecond)
	}

	if w.err != nil {
		log.Errorf("%s: %s%s", w.Message, w.err, clearLine)
	} else {
		log.Info(fmt.Sprintf("%s: %s%s%s%s", w.Message, colorGreen, "ok", colorReset, clearLine))
	}
	return w.err
}
