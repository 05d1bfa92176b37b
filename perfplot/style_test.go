// Copyright 2023 The gcache Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perfplot

import (
	"strings"
	"testing"
)

func TestStyleFor(t *testing.T) {
	st, err := StyleFor("zipf_s1G_z0.99")
	if err != nil {
		t.Fatalf("StyleFor: %v", err)
	}
	if st.Label == "" || st.Color == nil || st.Shape == nil {
		t.Errorf("incomplete style: %+v", st)
	}

	_, err = StyleFor("zipf_s4G_z0.9")
	if err == nil {
		t.Fatal("StyleFor of unregistered scenario succeeded")
	}
	if !strings.Contains(err.Error(), "zipf_s4G_z0.9") {
		t.Errorf("error %q does not name the scenario", err)
	}
}

func TestCheckStyles(t *testing.T) {
	if err := CheckStyles([]string{"unif_s1G", "zipf_s2G_z0.5"}); err != nil {
		t.Errorf("CheckStyles: %v", err)
	}
	if err := CheckStyles([]string{"unif_s1G", "bogus"}); err == nil {
		t.Error("CheckStyles accepted an unregistered scenario")
	}
}

// Every scenario a stock figure names must have a style, and legend
// labels must not collide.
func TestFigureScenariosRegistered(t *testing.T) {
	names := append([]string(nil), MotivScenarios...)
	for _, sc := range PerfScenarios {
		names = append(names, sc.Name)
	}
	if err := CheckStyles(names); err != nil {
		t.Fatalf("CheckStyles: %v", err)
	}

	labels := make(map[string]string)
	for _, name := range names {
		st, _ := StyleFor(name)
		if prev, ok := labels[st.Label]; ok && prev != name {
			t.Errorf("scenarios %q and %q share label %q", prev, name, st.Label)
		}
		labels[st.Label] = name
	}
}
