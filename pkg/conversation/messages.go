package conversation

// DefaultLocale is the mandatory fallback whenever the active locale is
// missing a message key.
const DefaultLocale = "en-US"

var greetings = map[string]string{
	"en-US": "Hello! I'm your FIR filing assistant. Please describe the incident in your own words — include what happened, when, where, who was involved, and any other details you remember. You can speak or type freely.",
	"en-IN": "Hello! I'm your FIR filing assistant. Please describe the incident in your own words — include what happened, when, where, who was involved, and any other details you remember. You can speak or type freely.",
	"te-IN": "నమస్కారం! నేను మీ FIR దాఖలు సహాయకుడిని. దయచేసి జరిగిన సంఘటనను మీ సొంత మాటల్లో వివరించండి — ఏమి జరిగిందో, ఎప్పుడు, ఎక్కడ, ఎవరు పాల్గొన్నారో చెప్పండి.",
	"hi-IN": "नमस्ते! मैं आपका FIR दर्ज करने का सहायक हूँ। कृपया घटना को अपने शब्दों में बताएं — क्या हुआ, कब, कहाँ, कौन शामिल था — सब कुछ बताएं।",
	"ta-IN": "வணக்கம்! நான் உங்கள் FIR தாக்கல் உதவியாளர். நடந்த சம்பவத்தை உங்கள் சொந்த வார்த்தைகளில் விவரிக்கவும்.",
	"kn-IN": "ನಮಸ್ಕಾರ! ನಾನು ನಿಮ್ಮ FIR ಸಲ್ಲಿಕೆ ಸಹಾಯಕ. ದಯವಿಟ್ಟು ಘಟನೆಯನ್ನು ನಿಮ್ಮ ಸ್ವಂತ ಮಾತುಗಳಲ್ಲಿ ವಿವರಿಸಿ.",
}

var processing = map[string]string{
	"en-US": "Thank you. I'm processing your statement and generating your FIR report...",
	"en-IN": "Thank you. I'm processing your statement and generating your FIR report...",
	"te-IN": "ధన్యవాదాలు. మీ వివరణను ప్రాసెస్ చేస్తున్నాను మరియు FIR నివేదికను రూపొందిస్తున్నాను...",
	"hi-IN": "धन्यवाद। मैं आपका बयान प्रोसेस कर रहा हूँ और FIR रिपोर्ट बना रहा हूँ...",
	"ta-IN": "நன்றி. உங்கள் அறிக்கையை செயலாக்கி FIR அறிக்கையை உருவாக்குகிறேன்...",
	"kn-IN": "ಧನ್ಯವಾದ. ನಿಮ್ಮ ಹೇಳಿಕೆಯನ್ನು ಪ್ರಕ್ರಿಯೆಗೊಳಿಸಿ FIR ವರದಿಯನ್ನು ರಚಿಸುತ್ತಿದ್ದೇನೆ...",
}

var extractionError = map[string]string{
	"en-US": "I'm sorry, there was an error processing your report. Please try again.",
	"en-IN": "I'm sorry, there was an error processing your report. Please try again.",
	"te-IN": "క్షమించండి, మీ నివేదికను ప్రాసెస్ చేయడంలో లోపం ఉంది. దయచేసి మళ్ళీ ప్రయత్నించండి.",
	"hi-IN": "क्षमा करें, रिपोर्ट प्रोसेस करने में त्रुटि हुई। कृपया पुनः प्रयास करें।",
	"ta-IN": "மன்னிக்கவும், உங்கள் அறிக்கையை செயலாக்குவதில் பிழை. மீண்டும் முயற்சிக்கவும்.",
	"kn-IN": "ಕ್ಷಮಿಸಿ, ನಿಮ್ಮ ವರದಿಯನ್ನು ಪ್ರಕ್ರಿಯೆಗೊಳಿಸುವಲ್ಲಿ ದೋಷ. ದಯವಿಟ್ಟು ಮತ್ತೆ ಪ್ರಯತ್ನಿಸಿ.",
}

// success messages embed the FIR number via %s.
var success = map[string]string{
	"en-US": "Your FIR has been successfully generated. FIR Number: %s. Please review the report below and download or print it.",
	"en-IN": "Your FIR has been successfully generated. FIR Number: %s. Please review the report below and download or print it.",
	"te-IN": "మీ FIR విజయవంతంగా నమోదు చేయబడింది. FIR నంబర్: %s",
	"hi-IN": "आपकी FIR सफलतापूर्वक दर्ज की गई। FIR नंबर: %s",
}

var alreadyFiled = map[string]string{
	"en-US": "Your FIR has already been generated. Please start a new FIR to file another.",
}

func message(table map[string]string, locale string) string {
	if msg, ok := table[locale]; ok {
		return msg
	}
	return table[DefaultLocale]
}
