// SPDX-License-Identifier: MIT

package ecb

const dailyXML = `<?xml version="1.0" encoding="UTF-8"?>
<gesmes:Envelope xmlns:gesmes="http://www.gesmes.org/xml/2002-08-01" xmlns="http://www.ecb.int/vocabulary/2002-08-01/eurofxref">
	<gesmes:subject>Reference rates</gesmes:subject>
	<gesmes:Sender>
		<gesmes:name>European Central Bank</gesmes:name>
	</gesmes:Sender>
	<Cube>
		<Cube time='2024-03-01'>
			<Cube currency='USD' rate='1.0834'/>
			<Cube currency='JPY' rate='162.45'/>
			<Cube currency='GBP' rate='0.85618'/>
		</Cube>
	</Cube>
</gesmes:Envelope>`

const historicalXML = `<?xml version="1.0" encoding="UTF-8"?>
<gesmes:Envelope xmlns:gesmes="http://www.gesmes.org/xml/2002-08-01" xmlns="http://www.ecb.int/vocabulary/2002-08-01/eurofxref">
	<gesmes:subject>Reference rates</gesmes:subject>
	<Cube>
		<Cube time="2024-03-04">
			<Cube currency="USD" rate="1.0845"/>
			<Cube currency="GBP" rate="0.8557"/>
		</Cube>
		<Cube time="2024-03-01">
			<Cube currency="USD" rate="1.0834"/>
			<Cube currency="GBP" rate="0.85618"/>
		</Cube>
		<Cube time="2024-02-29"></Cube>
	</Cube>
</gesmes:Envelope>`

const emptyXML = `<gesmes:Envelope xmlns:gesmes="http://www.gesmes.org/xml/2002-08-01"><Cube></Cube></gesmes:Envelope>`
