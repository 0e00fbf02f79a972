package cvss

import (
	"bytes"
	"text/template"
)

const xmlTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<cvssv3.1 xmlns="https://www.first.org/cvss/cvss-v3.1.xsd"
  xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
  xsi:schemaLocation="https://www.first.org/cvss/cvss-v3.1.xsd https://www.first.org/cvss/cvss-v3.1.xsd"
  >

  <base_metrics>
    <attack-vector>{{.Names.AV}}</attack-vector>
    <attack-complexity>{{.Names.AC}}</attack-complexity>
    <privileges-required>{{.Names.PR}}</privileges-required>
    <user-interaction>{{.Names.UI}}</user-interaction>
    <scope>{{.Names.S}}</scope>
    <confidentiality-impact>{{.Names.C}}</confidentiality-impact>
    <integrity-impact>{{.Names.I}}</integrity-impact>
    <availability-impact>{{.Names.A}}</availability-impact>
    <base-score>{{.Result.BaseMetricScore}}</base-score>
    <base-severity>{{.Result.BaseSeverity}}</base-severity>
  </base_metrics>

  <temporal_metrics>
    <exploit-code-maturity>{{.Names.E}}</exploit-code-maturity>
    <remediation-level>{{.Names.RL}}</remediation-level>
    <report-confidence>{{.Names.RC}}</report-confidence>
    <temporal-score>{{.Result.TemporalMetricScore}}</temporal-score>
    <temporal-severity>{{.Result.TemporalSeverity}}</temporal-severity>
  </temporal_metrics>

  <environmental_metrics>
    <confidentiality-requirement>{{.Names.CR}}</confidentiality-requirement>
    <integrity-requirement>{{.Names.IR}}</integrity-requirement>
    <availability-requirement>{{.Names.AR}}</availability-requirement>
    <modified-attack-vector>{{.Names.MAV}}</modified-attack-vector>
    <modified-attack-complexity>{{.Names.MAC}}</modified-attack-complexity>
    <modified-privileges-required>{{.Names.MPR}}</modified-privileges-required>
    <modified-user-interaction>{{.Names.MUI}}</modified-user-interaction>
    <modified-scope>{{.Names.MS}}</modified-scope>
    <modified-confidentiality-impact>{{.Names.MC}}</modified-confidentiality-impact>
    <modified-integrity-impact>{{.Names.MI}}</modified-integrity-impact>
    <modified-availability-impact>{{.Names.MA}}</modified-availability-impact>
    <environmental-score>{{.Result.EnvironmentalMetricScore}}</environmental-score>
    <environmental-severity>{{.Result.EnvironmentalSeverity}}</environmental-severity>
  </environmental_metrics>

</cvssv3.1>
`

var xmlTmpl = template.Must(template.New("cvssv3.1").Parse(xmlTemplate))

type xmlView struct {
	Names  record
	Result *Result
}

// GenerateXMLFromMetrics validates and scores m, then renders the FIRST.org
// CVSS v3.1 XML document.
func GenerateXMLFromMetrics(m Metrics) (string, error) {
	res, err := CalculateFromMetrics(m)
	if err != nil {
		return "", err
	}
	return RenderXML(res)
}

// GenerateXMLFromVector is GenerateXMLFromMetrics for a vector string.
func GenerateXMLFromVector(vector string) (string, error) {
	res, err := CalculateFromVector(vector)
	if err != nil {
		return "", err
	}
	return RenderXML(res)
}

// RenderXML renders an existing result.
func RenderXML(res *Result) (string, error) {
	var buf bytes.Buffer
	if err := xmlTmpl.Execute(&buf, xmlView{Names: longNames(res), Result: res}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// longNames maps every resolved code of res to its long form.
func longNames(res *Result) record {
	m := res.Metrics()
	name := func(abbr string) string {
		code := m[abbr]
		if code == "" {
			code = NotDefined
		}
		return LongName(abbr, code)
	}
	return record{
		AV: name("AV"), AC: name("AC"), PR: name("PR"), UI: name("UI"),
		S: name("S"), C: name("C"), I: name("I"), A: name("A"),
		E: name("E"), RL: name("RL"), RC: name("RC"),
		CR: name("CR"), IR: name("IR"), AR: name("AR"),
		MAV: name("MAV"), MAC: name("MAC"), MPR: name("MPR"), MUI: name("MUI"),
		MS: name("MS"), MC: name("MC"), MI: name("MI"), MA: name("MA"),
	}
}
