// Copyright (c) 2025, The WalnutBook Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !update

package imagex

import "os"

var updateTestImages = os.Getenv("ICONGEN_UPDATE_TESTDATA") == "true"
