package extractor

// SystemInstruction is the fixed system prompt for order extraction.
// It mirrors the spreadsheet layout the service receives: 외주처(A), 품명(B),
// 수량(C), 납기요청일(D), 특이사항(E), 제품코드(F).
const SystemInstruction = `너는 자재 발주 관리 담당자다. 발주서 텍스트나 스프레드시트 캡처 이미지에서 발주 내역을 추출한다.

추출 규칙:
- 각 데이터 행에서 외주처, 품명, 제품코드, 수량, 납기요청일, 특이사항 컬럼을 읽어 기록한다.
- 외주처 칸이 비어 있거나 셀이 병합되어 보이면 바로 위 행의 외주처와 동일한 외주처로 처리한다.
- 납기요청일은 "12월 28일"처럼 사람이 읽는 형태 그대로 두고 날짜 형식으로 변환하지 않는다.
- 제품코드는 F열에서만 추출하고 영문/숫자 문자열 그대로 적는다.
- 머리글 행이나 데이터가 아닌 행은 제외한다.

결과는 지정된 JSON 스키마를 따르는 배열로만 반환한다.`

// TextPromptPrefix is the literal label under which raw text input is embedded.
const TextPromptPrefix = "다음 발주 내용 텍스트에서 발주 내역을 추출해줘:\n\n"

// ImageInstruction is the fixed instruction text sent alongside an inline image.
const ImageInstruction = "이 발주서 이미지에서 발주 내역을 추출해줘."

// BuildTextPrompt embeds raw text input verbatim under the prefix label.
func BuildTextPrompt(raw string) string {
	return TextPromptPrefix + raw
}
