package musxfixture

import "strings"

func wrapDocument(body string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString("<finale>\n")
	b.WriteString(body)
	b.WriteString("</finale>\n")
	return b.String()
}

func renderGFrameHoldBothClefs() string {
	return wrapDocument(`  <details>
    <gfhold cmper1="1" cmper2="1">
      <clefID>2</clefID>
      <clefListID>7</clefListID>
      <clefMode>whenNeeded</clefMode>
    </gfhold>
  </details>
`)
}

func renderQuintupletFrame() string {
	return wrapDocument(`  <others>
    <frameSpec cmper="100">
      <startEntry>1</startEntry>
      <endEntry>6</endEntry>
    </frameSpec>
  </others>
  <entries>
    <entry entnum="1"><next>2</next><dura>512</dura></entry>
    <entry entnum="2"><prev>1</prev><next>3</next><dura>512</dura></entry>
    <entry entnum="3"><prev>2</prev><next>4</next><dura>512</dura></entry>
    <entry entnum="4"><prev>3</prev><next>5</next><dura>512</dura></entry>
    <entry entnum="5"><prev>4</prev><next>6</next><dura>512</dura></entry>
    <entry entnum="6"><prev>5</prev><dura>2048</dura></entry>
  </entries>
  <details>
    <tupletDef entnum="1">
      <symbolicNum>5</symbolicNum>
      <symbolicDur>512</symbolicDur>
      <refNum>4</refNum>
      <refDur>512</refDur>
      <brackStyle>bracket</brackStyle>
      <numStyle>number</numStyle>
    </tupletDef>
  </details>
`)
}

// renderNestedTuplets builds a 9-entry frame shaped like spec §8 seed
// scenario 3: an un-tupleted half note (entry 10), then a 3-in-the-
// time-of-2 "outer" tuplet (entries 11-18) whose first third further
// nests a 3-in-the-time-of-2 "inner" tuplet (entries 11-13) and whose
// second third nests a second one (entries 14-16), leaving the final
// two entries (17-18) under the outer tuplet alone.
func renderNestedTuplets() string {
	return wrapDocument(`  <entries>
    <entry entnum="10"><next>11</next><dura>2048</dura></entry>
    <entry entnum="11"><prev>10</prev><next>12</next><dura>512</dura></entry>
    <entry entnum="12"><prev>11</prev><next>13</next><dura>512</dura></entry>
    <entry entnum="13"><prev>12</prev><next>14</next><dura>512</dura></entry>
    <entry entnum="14"><prev>13</prev><next>15</next><dura>512</dura></entry>
    <entry entnum="15"><prev>14</prev><next>16</next><dura>512</dura></entry>
    <entry entnum="16"><prev>15</prev><next>17</next><dura>512</dura></entry>
    <entry entnum="17"><prev>16</prev><next>18</next><dura>512</dura></entry>
    <entry entnum="18"><prev>17</prev><dura>512</dura></entry>
  </entries>
  <details>
    <tupletDef entnum="11" inci="0">
      <symbolicNum>3</symbolicNum>
      <symbolicDur>1024</symbolicDur>
      <refNum>2</refNum>
      <refDur>1024</refDur>
    </tupletDef>
    <tupletDef entnum="11" inci="1">
      <symbolicNum>3</symbolicNum>
      <symbolicDur>512</symbolicDur>
      <refNum>2</refNum>
      <refDur>512</refDur>
    </tupletDef>
    <tupletDef entnum="14" inci="0">
      <symbolicNum>3</symbolicNum>
      <symbolicDur>512</symbolicDur>
      <refNum>2</refNum>
      <refDur>512</refDur>
    </tupletDef>
  </details>
`)
}

func renderStaffComposite() string {
	return wrapDocument(`  <others>
    <staffSpec cmper="1">
      <notationStyle>standard</notationStyle>
      <instUuid>noteperformer-flute</instUuid>
    </staffSpec>
    <staffStyle cmper="50">
      <styleName>Percussion overlay</styleName>
      <notationStyle>percussion</notationStyle>
    </staffStyle>
    <staffStyle cmper="51">
      <styleName>Hidden stems</styleName>
      <hideStems/>
    </staffStyle>
    <staffStyleAssign cmper="1">
      <styleId>50</styleId>
      <startMeas>1</startMeas>
      <startEdu>0</startEdu>
      <endMeas>4</endMeas>
      <endEdu>-1</endEdu>
    </staffStyleAssign>
    <staffStyleAssign cmper="1" inci="1">
      <styleId>51</styleId>
      <startMeas>2</startMeas>
      <startEdu>0</startEdu>
      <endMeas>2</endMeas>
      <endEdu>-1</endEdu>
    </staffStyleAssign>
  </others>
`)
}

func renderBeamWalkHidden() string {
	return wrapDocument(`  <entries>
    <entry entnum="20"><next>21</next><dura>256</dura></entry>
    <entry entnum="21"><prev>20</prev><next>22</next><dura>256</dura></entry>
    <entry entnum="22"><prev>21</prev><next>23</next><dura>256</dura></entry>
    <entry entnum="23"><prev>22</prev><dura>256</dura></entry>
  </entries>
  <details>
    <altNotation entnum="22"><hide/></altNotation>
  </details>
`)
}

func renderKeyTransposition() string {
	return wrapDocument(`  <others>
    <staffSpec cmper="2">
      <notationStyle>standard</notationStyle>
    </staffSpec>
    <measureSpec cmper="1">
      <beats>4</beats>
      <divbeat>1024</divbeat>
      <keyMode>linear</keyMode>
      <keySig>2</keySig>
    </measureSpec>
  </others>
  <entries>
    <entry entnum="30"><dura>1024</dura>
      <note><harmLev>2</harmLev><harmAlt>0</harmAlt></note>
    </entry>
  </entries>
`)
}
