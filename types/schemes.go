package types

import (
	"fmt"
	"strings"
)

type SchemeType uint8

const (
	Scheme_FV_Godunov SchemeType = iota
	Scheme_FV_WENO5
	Scheme_FD_WENO5
	Scheme_DG
	Scheme_DG_TVB
)

var SchemeNameMap = map[string]SchemeType{
	"godunov":  Scheme_FV_Godunov,
	"fv":       Scheme_FV_Godunov,
	"fv-weno5": Scheme_FV_WENO5,
	"weno5":    Scheme_FV_WENO5,
	"fd-weno5": Scheme_FD_WENO5,
	"dg":       Scheme_DG,
	"dg-tvb":   Scheme_DG_TVB,
}

var schemePrintNames = []string{
	"FV Godunov",
	"FV WENO5 Lax-Friedrichs",
	"FD WENO5 Flux Splitting",
	"Modal DG",
	"Modal DG TVB Limited",
}

func (st SchemeType) String() string {
	if int(st) < len(schemePrintNames) {
		return schemePrintNames[st]
	}
	return fmt.Sprintf("SchemeType(%d)", uint8(st))
}

// DefaultIntegrator is the time integrator each scheme was designed around
func (st SchemeType) DefaultIntegrator() IntegratorType {
	if st == Scheme_FV_Godunov {
		return Integrator_Euler
	}
	return Integrator_SSPRK3
}

func NewSchemeType(label string) (st SchemeType, err error) {
	var ok bool
	if st, ok = SchemeNameMap[strings.ToLower(strings.TrimSpace(label))]; !ok {
		err = fmt.Errorf("unknown scheme %q", label)
	}
	return
}

type IntegratorType uint8

const (
	Integrator_Euler IntegratorType = iota
	Integrator_SSPRK3
)

var IntegratorNameMap = map[string]IntegratorType{
	"euler":   Integrator_Euler,
	"rk3":     Integrator_SSPRK3,
	"ssprk3":  Integrator_SSPRK3,
	"ssp-rk3": Integrator_SSPRK3,
}

func (it IntegratorType) String() string {
	switch it {
	case Integrator_Euler:
		return "Explicit Euler"
	case Integrator_SSPRK3:
		return "SSP-RK3"
	}
	return fmt.Sprintf("IntegratorType(%d)", uint8(it))
}

func NewIntegratorType(label string) (it IntegratorType, err error) {
	var ok bool
	if it, ok = IntegratorNameMap[strings.ToLower(strings.TrimSpace(label))]; !ok {
		err = fmt.Errorf("unknown time integrator %q", label)
	}
	return
}

type NormType uint8

const (
	Norm_Linf NormType = iota
	Norm_L1
	Norm_L2
)

func (nt NormType) String() string {
	switch nt {
	case Norm_Linf:
		return "Linf"
	case Norm_L1:
		return "L1"
	case Norm_L2:
		return "L2"
	}
	return fmt.Sprintf("NormType(%d)", uint8(nt))
}
